package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

// ProgressBufferMultiplier sizes the progress channel relative to the number
// of tracks so a slow display rarely blocks the sweep.
const ProgressBufferMultiplier = 5

// ExecuteBenchmarks runs the plan sequentially: for each thread count, Reps
// scans of plan.Host, one after another, so runs never compete for CPUs.
//
// A failed run ends its track with Err set; the sweep moves on to the next
// thread count. Once ctx is done every remaining track gets ctx's error
// without running.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - checker: Runs the individual scans.
//   - plan: The sweep to run.
//   - progressReporter: Displays progress (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []BenchmarkResult: One entry per plan.Threads element, in plan order.
func ExecuteBenchmarks(ctx context.Context, checker HostChecker, plan BenchmarkPlan, progressReporter ProgressReporter, out io.Writer) []BenchmarkResult {
	results := make([]BenchmarkResult, len(plan.Threads))
	progressChan := make(chan ProgressUpdate, max(len(plan.Threads), 1)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(plan.Threads), out)

	for i, threads := range plan.Threads {
		results[i] = runTrack(ctx, checker, plan, i, threads, progressChan)
	}

	close(progressChan)
	displayWg.Wait()
	return results
}

func runTrack(ctx context.Context, checker HostChecker, plan BenchmarkPlan, index, threads int, progressChan chan<- ProgressUpdate) BenchmarkResult {
	res := BenchmarkResult{Threads: threads}
	if plan.Reps < 1 {
		res.Err = apperrors.NewInvalidArgument("reps", "must be at least 1, got %d", plan.Reps)
		return res
	}

	var total time.Duration
	for run := 1; run <= plan.Reps; run++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		r, err := checker.CheckHost(ctx, plan.Host, threads)
		if err != nil {
			res.Err = apperrors.WrapError(err, "run %d with %d threads", run, threads)
			break
		}
		res.Runs = append(res.Runs, r)
		res.Last = r
		total += r.Elapsed()
		progressChan <- ProgressUpdate{
			Index:   index,
			Threads: threads,
			Run:     run,
			Value:   float64(run) / float64(plan.Reps),
		}
	}
	if len(res.Runs) > 0 {
		res.Average = total / time.Duration(len(res.Runs))
	}
	return res
}

// AnalyzeBenchmarkResults presents the sweep and derives the exit code.
//
// Tracks with an error are reported but do not fail the sweep unless every
// track failed. All successful tracks must agree on the verdict; a
// disagreement means the scan is not deterministic and is reported as
// ExitErrorMismatch.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeBenchmarkResults(plan BenchmarkPlan, results []BenchmarkResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentBenchmarkTable(plan, results, out)

	var best *BenchmarkResult
	var firstError error
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			if firstError == nil {
				firstError = r.Err
			}
			continue
		}
		if best == nil || r.Average < best.Average {
			best = r
		}
	}

	if best == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No configuration completed its runs.\n")
		if firstError == nil {
			firstError = apperrors.NewInvalidArgument("threads", "the benchmark plan is empty")
		}
		return presenter.HandleError(firstError, 0, out)
	}

	for _, r := range results {
		if r.Err == nil && r.Last.Trustworthy() != best.Last.Trustworthy() {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Thread counts %d and %d disagree on the verdict.\n", best.Threads, r.Threads)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All completed configurations agree on the verdict.\n")
	presenter.PresentBestConfiguration(*best, out)
	return apperrors.ExitSuccess
}
