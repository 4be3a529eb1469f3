package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/blcheck/internal/logging"
	"github.com/agbru/blcheck/internal/scan"
)

func TestMetrics_ActiveRequests(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.IncrementActiveRequests()
	m.IncrementActiveRequests()
	if got := testutil.ToFloat64(m.activeRequests); got != 2 {
		t.Errorf("active = %v, want 2", got)
	}
	m.DecrementActiveRequests()
	if got := testutil.ToFloat64(m.activeRequests); got != 1 {
		t.Errorf("active = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal); got != 2 {
		t.Errorf("requests_total = %v, want 2", got)
	}
}

func TestMetrics_IsolatedRegistries(t *testing.T) {
	t.Parallel()
	a, b := NewMetrics(), NewMetrics()
	a.IncrementActiveRequests()
	if got := testutil.ToFloat64(b.requestsTotal); got != 0 {
		t.Errorf("second instance saw %v requests", got)
	}
}

func TestMetrics_RecordScan(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	res, err := scan.NewResult("200.24.34.55", false, []int{0, 1, 2, 3, 4}, 5, 10000, 3*time.Millisecond, 4)
	if err != nil {
		t.Fatalf("NewResult failed: %v", err)
	}
	m.RecordScan(res)
	m.RecordResponse(checkPath, http.StatusOK)

	if got := testutil.ToFloat64(m.verdicts.WithLabelValues("untrustworthy")); got != 1 {
		t.Errorf("untrustworthy verdicts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.verdicts.WithLabelValues("trustworthy")); got != 0 {
		t.Errorf("trustworthy verdicts = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.responses.WithLabelValues(checkPath, "200")); got != 1 {
		t.Errorf("responses = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, httptest.NewRequest(http.MethodGet, metricsPath, http.NoBody))
	body := rec.Body.String()
	for _, want := range []string{
		"blcheck_scan_duration_seconds_count 1",
		"blcheck_scan_checked_servers_sum 5",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

func TestServer_metricsMiddleware(t *testing.T) {
	t.Parallel()
	s := &Server{metrics: NewMetrics()}

	var activeInside float64
	handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		activeInside = testutil.ToFloat64(s.metrics.activeRequests)
		w.WriteHeader(http.StatusBadRequest)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, checkPath, http.NoBody))

	if activeInside != 1 {
		t.Errorf("active requests inside handler = %v, want 1", activeInside)
	}
	if got := testutil.ToFloat64(s.metrics.activeRequests); got != 0 {
		t.Errorf("active requests after handler = %v, want 0", got)
	}
	if got := testutil.ToFloat64(s.metrics.responses.WithLabelValues(checkPath, "400")); got != 1 {
		t.Errorf("400 responses = %v, want 1", got)
	}
}

func TestServer_ResponseLabelsAreBounded(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, &stubChecker{})

	for i := range 500 {
		rec := do(t, s, http.MethodGet, fmt.Sprintf("/junk/%d", i))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET /junk/%d = %d, want 404", i, rec.Code)
		}
	}
	do(t, s, http.MethodGet, checkPath+"?ip=212.24.24.55&threads=1")
	do(t, s, http.MethodGet, checkPath+"?ip=not-an-ip")

	if got := testutil.CollectAndCount(s.metrics.responses); got != 3 {
		t.Errorf("responses_total has %d series, want 3", got)
	}
	if got := testutil.ToFloat64(s.metrics.responses.WithLabelValues(unmatchedRoute, "404")); got != 500 {
		t.Errorf("unmatched 404 responses = %v, want 500", got)
	}
	if got := testutil.ToFloat64(s.metrics.responses.WithLabelValues(checkPath, "400")); got != 1 {
		t.Errorf("check 400 responses = %v, want 1", got)
	}
}

func TestServer_handleMetrics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusMethodNotAllowed},
		{http.MethodPut, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()
			s := &Server{metrics: NewMetrics(), logger: newTestLogger()}
			rec := httptest.NewRecorder()
			s.handleMetrics(rec, httptest.NewRequest(tt.method, metricsPath, http.NoBody))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && !strings.Contains(rec.Body.String(), "blcheck_") {
				t.Error("response should contain blcheck metrics")
			}
		})
	}
}

// testLogger is a minimal logger for testing that implements logging.Logger.
type testLogger struct{}

func newTestLogger() *testLogger                                  { return &testLogger{} }
func (l *testLogger) Info(_ string, _ ...logging.Field)           {}
func (l *testLogger) Error(_ string, _ error, _ ...logging.Field) {}
func (l *testLogger) Debug(_ string, _ ...logging.Field)          {}
func (l *testLogger) Printf(_ string, _ ...any)                   {}
func (l *testLogger) Println(_ ...any)                            {}
