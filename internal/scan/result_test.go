package scan

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

func TestNewResult_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		host    string
		matches []int
		checked int
		total   int
		elapsed time.Duration
		threads int
		field   string
	}{
		{"Blank host", "  ", nil, 0, 10, 0, 1, "host"},
		{"Negative total", "h", nil, 0, -1, 0, 1, "totalServers"},
		{"Negative checked", "h", nil, -1, 10, 0, 1, "checkedServers"},
		{"Checked exceeds total", "h", nil, 11, 10, 0, 1, "checkedServers"},
		{"More matches than checked", "h", []int{1, 2, 3}, 2, 10, 0, 1, "matches"},
		{"Negative elapsed", "h", nil, 1, 10, -time.Millisecond, 1, "elapsed"},
		{"Zero threads", "h", nil, 1, 10, 0, 0, "threads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewResult(tt.host, true, tt.matches, tt.checked, tt.total, tt.elapsed, tt.threads)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var argErr apperrors.InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected InvalidArgumentError, got %T", err)
			}
			if argErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, argErr.Field)
			}
		})
	}
}

func TestResult_Accessors(t *testing.T) {
	t.Parallel()
	matches := []int{0, 1, 2, 3, 4}
	res, err := NewResult("200.24.34.55", false, matches, 2500, 10000, 1500*time.Millisecond, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches[0] = 99
	if res.Matches()[0] != 0 {
		t.Error("NewResult should copy the matches slice")
	}
	got := res.Matches()
	got[1] = 99
	if res.Matches()[1] != 1 {
		t.Error("Matches() should return a copy")
	}

	if res.Host() != "200.24.34.55" || res.Trustworthy() || res.Threads() != 4 {
		t.Errorf("unexpected accessors: %+v", res)
	}
	if res.MatchCount() != 5 {
		t.Errorf("MatchCount() = %d, want 5", res.MatchCount())
	}
	if res.ElapsedMs() != 1500 {
		t.Errorf("ElapsedMs() = %d, want 1500", res.ElapsedMs())
	}
	if res.Efficiency() != 25 {
		t.Errorf("Efficiency() = %f, want 25", res.Efficiency())
	}
	if !res.EarlyStopped() {
		t.Error("EarlyStopped() should be true when checked < total")
	}
}

func TestResult_EmptyPopulation(t *testing.T) {
	t.Parallel()
	res, err := NewResult("h", true, nil, 0, 0, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Efficiency() != 0 {
		t.Errorf("Efficiency() = %f, want 0 for empty population", res.Efficiency())
	}
	if res.EarlyStopped() {
		t.Error("EarlyStopped() should be false for an empty population")
	}
	if m := res.Matches(); m == nil || len(m) != 0 {
		t.Errorf("Matches() = %v, want empty non-nil slice", m)
	}
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()
	res, err := NewResult("212.24.24.55", true, nil, 10000, 10000, 42*time.Millisecond, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	body := string(data)
	for _, want := range []string{
		`"ip":"212.24.24.55"`, `"trustworthy":true`, `"matches":[]`,
		`"checkedServers":10000`, `"totalServers":10000`, `"elapsedMs":42`, `"threads":8`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("JSON %s should contain %s", body, want)
		}
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Host() != res.Host() || decoded.CheckedServers() != res.CheckedServers() || decoded.Elapsed() != res.Elapsed() {
		t.Errorf("decoded %+v differs from %+v", decoded, res)
	}

	bad := `{"ip":"h","checkedServers":5,"totalServers":1,"threads":1}`
	if err := json.Unmarshal([]byte(bad), &decoded); !apperrors.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for inconsistent JSON, got %v", err)
	}
}
