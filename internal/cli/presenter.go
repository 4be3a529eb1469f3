package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/format"
	"github.com/agbru/blcheck/internal/metrics"
	"github.com/agbru/blcheck/internal/orchestration"
	"github.com/agbru/blcheck/internal/sysmon"
	"github.com/agbru/blcheck/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numTracks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numTracks, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentBenchmarkTable displays one row per thread count. Padding is done
// by hand because the cells carry ANSI color codes.
func (CLIResultPresenter) PresentBenchmarkTable(plan orchestration.BenchmarkPlan, results []orchestration.BenchmarkResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Benchmark Summary: %s%s%s, %d run(s) per configuration ---\n",
		ui.ColorMagenta(), plan.Host, ui.ColorReset(), plan.Reps)

	headers := []string{"Threads", "Avg time", "Checked", "Matches"}
	rows := make([][]string, len(results))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for i, res := range results {
		row := []string{fmt.Sprint(res.Threads), "-", "-", "-"}
		if len(res.Runs) > 0 {
			row[1] = format.FormatExecutionDuration(res.Average)
			row[2] = format.FormatInt(res.Last.CheckedServers())
			row[3] = fmt.Sprint(res.Last.MatchCount())
		}
		for j, cell := range row {
			widths[j] = max(widths[j], len([]rune(cell)))
		}
		rows[i] = row
	}

	colors := []func() string{ui.ColorBlue, ui.ColorYellow, ui.ColorCyan, ui.ColorCyan}
	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorUnderline(), h, ui.ColorReset(), padRight("", widths[i]-len(h)))
	}
	fmt.Fprintf(out, "%sStatus%s\n", ui.ColorUnderline(), ui.ColorReset())

	for i, row := range rows {
		for j, cell := range row {
			fmt.Fprintf(out, "%s%s%s%s   ", colors[j](), cell, ui.ColorReset(), padRight("", widths[j]-len([]rune(cell))))
		}
		fmt.Fprintln(out, formatStatus(results[i]))
	}
}

func formatStatus(res orchestration.BenchmarkResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
	}
	if res.Last.Trustworthy() {
		return fmt.Sprintf("%s✅ %s%s", ui.ColorGreen(), FormatVerdict(true), ui.ColorReset())
	}
	return fmt.Sprintf("%s✅ %s%s", ui.ColorYellow(), FormatVerdict(false), ui.ColorReset())
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentBestConfiguration highlights the fastest thread count.
func (CLIResultPresenter) PresentBestConfiguration(best orchestration.BenchmarkResult, out io.Writer) {
	fmt.Fprintf(out, "Fastest configuration: %s%d threads%s (%s%s%s average, %s of servers checked).\n",
		ui.ColorGreen(), best.Threads, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(best.Average), ui.ColorReset(),
		format.FormatPercent(best.Last.Efficiency()))
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	code := apperrors.ExitCode(err)
	switch code {
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The execution limit was reached", ui.ColorRed())
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled", ui.ColorYellow())
	default:
		fmt.Fprintf(out, "%sStatus: Failure. %v", ui.ColorRed(), err)
	}
	if duration > 0 {
		fmt.Fprintf(out, " after %s%s%s", ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}
	fmt.Fprintf(out, ".%s\n", ui.ColorReset())
	return code
}

// DisplaySystemFooter prints host and runtime resource usage after a sweep.
func DisplaySystemFooter(stats sysmon.Stats, mem metrics.MemorySnapshot, delta metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nSystem:\n")
	fmt.Fprintf(out, "  CPU:             %s (%d logical)\n", format.FormatPercent(stats.CPUPercent), stats.LogicalCPUs)
	fmt.Fprintf(out, "  Memory:          %s of %s\n", format.FormatPercent(stats.MemPercent), format.FormatBytes(stats.MemTotal))
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(mem.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(delta.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseNs)/1e6)
}
