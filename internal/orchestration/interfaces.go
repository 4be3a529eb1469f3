package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/blcheck/internal/scan"
)

// HostChecker runs one scan. *scan.Checker satisfies it.
type HostChecker interface {
	CheckHost(ctx context.Context, host string, workers int) (scan.Result, error)
}

// BenchmarkPlan describes a sweep: Host is checked Reps times for every
// entry of Threads, in order.
type BenchmarkPlan struct {
	Host    string
	Threads []int
	Reps    int
}

// Runs returns the total number of scans the plan performs.
func (p BenchmarkPlan) Runs() int { return len(p.Threads) * max(p.Reps, 0) }

// BenchmarkResult aggregates the runs of one thread count.
type BenchmarkResult struct {
	// Threads is the worker count used for every run.
	Threads int
	// Runs holds the successful runs in execution order.
	Runs []scan.Result
	// Average is the mean elapsed time over Runs.
	Average time.Duration
	// Last is the final successful run, used for the checked/matches columns.
	Last scan.Result
	// Err is set when a run failed or the sweep was cancelled first.
	Err error
}

// ProgressUpdate reports that run Run (1-based) of track Index finished.
// Value is the track's completion fraction.
type ProgressUpdate struct {
	Index   int
	Threads int
	Run     int
	Value   float64
}

// ProgressReporter displays sweep progress. DisplayProgress runs in its own
// goroutine, must call wg.Done when finished, and must drain progressChan
// until it is closed.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTracks int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTracks int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numTracks int, out io.Writer) {
	f(wg, progressChan, numTracks, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter presents the outcome of a sweep.
type ResultPresenter interface {
	// PresentBenchmarkTable displays one row per thread count.
	PresentBenchmarkTable(plan BenchmarkPlan, results []BenchmarkResult, out io.Writer)
	// PresentBestConfiguration highlights the fastest thread count.
	PresentBestConfiguration(best BenchmarkResult, out io.Writer)
	ErrorHandler
}

// ErrorHandler handles sweep errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
