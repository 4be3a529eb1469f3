package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/blcheck/internal/config"
	"github.com/agbru/blcheck/internal/format"
	"github.com/agbru/blcheck/internal/ui"
)

// PrintExecutionConfig displays what a check or benchmark is about to do.
//
// Parameters:
//   - cfg: The application configuration.
//   - population: The number of servers in the registry.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, population int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Command {
	case config.CommandBench:
		fmt.Fprintf(out, "Benchmarking %s%s%s over thread counts %s%v%s, %d run(s) each, timeout %s%s%s.\n",
			ui.ColorMagenta(), cfg.BenchHost, ui.ColorReset(),
			ui.ColorCyan(), cfg.BenchThreads, ui.ColorReset(), cfg.BenchReps,
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Checking %s%s%s with %s%d%s thread(s) and a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.IP, ui.ColorReset(),
			ui.ColorCyan(), config.EffectiveThreads(cfg.Threads), ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Registry: %s%s%s servers, alarm at %s%d%s matches.\n",
		ui.ColorCyan(), format.FormatInt(population), ui.ColorReset(),
		ui.ColorCyan(), cfg.AlarmCount, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}
