package scan

import "sync/atomic"

// scanState is the shared, mutable state of one CheckHost invocation. It is
// created fresh per call and dropped once the Result is built. Every field is
// safe for concurrent mutation without an outer lock.
type scanState struct {
	threshold int64
	matches   atomic.Int64
	checked   atomic.Int64
	stop      atomic.Bool
}

func newScanState(threshold int) *scanState {
	return &scanState{threshold: int64(threshold)}
}

// recordMatch counts a hit and raises the stop flag once the threshold is
// reached. Several workers may raise it; the flag is never lowered.
func (s *scanState) recordMatch() {
	if s.matches.Add(1) >= s.threshold {
		s.stop.Store(true)
	}
}

func (s *scanState) recordChecked() { s.checked.Add(1) }

func (s *scanState) stopped() bool { return s.stop.Load() }
