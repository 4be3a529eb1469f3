package orchestration

import (
	"time"

	"github.com/agbru/blcheck/internal/format"
)

// ProgressAggregator turns per-track updates into an overall completion
// fraction and ETA.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numTracks int
}

// NewProgressAggregator creates an aggregator over numTracks tracks.
// Returns nil if numTracks <= 0.
func NewProgressAggregator(numTracks int) *ProgressAggregator {
	if numTracks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numTracks),
		numTracks: numTracks,
	}
}

// AggregatedProgress holds the result of processing a single update.
type AggregatedProgress struct {
	Index   int
	Threads int
	Run     int
	// Value is the track's own completion fraction.
	Value float64
	// AverageProgress is the completion over all tracks.
	AverageProgress float64
	ETA             time.Duration
}

// Update processes a single progress update.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.Index, update.Value)
	return AggregatedProgress{
		Index:           update.Index,
		Threads:         update.Threads,
		Run:             update.Run,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current overall completion without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumTracks returns the number of tracks.
func (a *ProgressAggregator) NumTracks() int {
	return a.numTracks
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
