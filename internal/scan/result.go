package scan

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

// Result is the immutable outcome of one scan. It is produced exactly once
// per successful CheckHost call; use the accessor methods to read it.
type Result struct {
	host        string
	trustworthy bool
	matches     []int
	checked     int
	total       int
	elapsed     time.Duration
	threads     int
}

// NewResult validates and builds a Result. The matches slice is copied.
//
// Returns an InvalidArgumentError when host is blank, checked is outside
// [0, total], there are more matches than checked servers, threads is not
// positive, or elapsed is negative.
func NewResult(host string, trustworthy bool, matches []int, checked, total int, elapsed time.Duration, threads int) (Result, error) {
	switch {
	case strings.TrimSpace(host) == "":
		return Result{}, apperrors.NewInvalidArgument("host", "cannot be empty")
	case total < 0:
		return Result{}, apperrors.NewInvalidArgument("totalServers", "cannot be negative, got %d", total)
	case checked < 0:
		return Result{}, apperrors.NewInvalidArgument("checkedServers", "cannot be negative, got %d", checked)
	case checked > total:
		return Result{}, apperrors.NewInvalidArgument("checkedServers", "%d exceeds total servers %d", checked, total)
	case len(matches) > checked:
		return Result{}, apperrors.NewInvalidArgument("matches", "%d matches exceed %d checked servers", len(matches), checked)
	case elapsed < 0:
		return Result{}, apperrors.NewInvalidArgument("elapsed", "cannot be negative, got %s", elapsed)
	case threads <= 0:
		return Result{}, apperrors.NewInvalidArgument("threads", "must be positive, got %d", threads)
	}

	return Result{
		host:        host,
		trustworthy: trustworthy,
		matches:     slices.Clone(matches),
		checked:     checked,
		total:       total,
		elapsed:     elapsed,
		threads:     threads,
	}, nil
}

// Host returns the checked host identifier.
func (r Result) Host() string { return r.host }

// Trustworthy returns the verdict.
func (r Result) Trustworthy() bool { return r.trustworthy }

// Matches returns a copy of the matched server indices in ascending order.
func (r Result) Matches() []int {
	if r.matches == nil {
		return []int{}
	}
	return slices.Clone(r.matches)
}

// MatchCount returns the number of matched servers.
func (r Result) MatchCount() int { return len(r.matches) }

// CheckedServers returns how many servers were actually examined.
func (r Result) CheckedServers() int { return r.checked }

// TotalServers returns the population size.
func (r Result) TotalServers() int { return r.total }

// Elapsed returns the wall-clock duration of the scan.
func (r Result) Elapsed() time.Duration { return r.elapsed }

// ElapsedMs returns the wall-clock duration in whole milliseconds.
func (r Result) ElapsedMs() int64 { return r.elapsed.Milliseconds() }

// Threads returns the worker count used.
func (r Result) Threads() int { return r.threads }

// Efficiency returns the percentage of the population that was examined,
// or 0 for an empty population.
func (r Result) Efficiency() float64 {
	if r.total == 0 {
		return 0
	}
	return float64(r.checked) / float64(r.total) * 100
}

// EarlyStopped reports whether the scan ended before examining every server.
func (r Result) EarlyStopped() bool { return r.checked < r.total }

// resultJSON is the wire form of a Result.
type resultJSON struct {
	IP             string `json:"ip"`
	Trustworthy    bool   `json:"trustworthy"`
	Matches        []int  `json:"matches"`
	CheckedServers int    `json:"checkedServers"`
	TotalServers   int    `json:"totalServers"`
	ElapsedMs      int64  `json:"elapsedMs"`
	Threads        int    `json:"threads"`
}

// MarshalJSON encodes the result in the API's response shape.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		IP:             r.host,
		Trustworthy:    r.trustworthy,
		Matches:        r.Matches(),
		CheckedServers: r.checked,
		TotalServers:   r.total,
		ElapsedMs:      r.ElapsedMs(),
		Threads:        r.threads,
	})
}

// UnmarshalJSON decodes the API's response shape, applying NewResult's checks.
func (r *Result) UnmarshalJSON(data []byte) error {
	var wire resultJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	res, err := NewResult(wire.IP, wire.Trustworthy, wire.Matches, wire.CheckedServers,
		wire.TotalServers, time.Duration(wire.ElapsedMs)*time.Millisecond, wire.Threads)
	if err != nil {
		return err
	}
	*r = res
	return nil
}
