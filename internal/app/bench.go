package app

import (
	"context"
	"io"

	"github.com/agbru/blcheck/internal/cli"
	"github.com/agbru/blcheck/internal/metrics"
	"github.com/agbru/blcheck/internal/orchestration"
	"github.com/agbru/blcheck/internal/scan"
	"github.com/agbru/blcheck/internal/sysmon"
)

// runBench runs the thread-count sweep and prints the comparison table.
func (a *Application) runBench(ctx context.Context, checker *scan.Checker, out io.Writer) int {
	ctx, stop := a.withLifecycle(ctx)
	defer stop()

	plan := orchestration.PlanFromConfig(a.Config)
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.Oracle.RegisteredServerCount(), out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := a.ErrWriter
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	sysmon.Prime()

	results := orchestration.ExecuteBenchmarks(ctx, checker, plan, reporter, progressOut)
	code := orchestration.AnalyzeBenchmarkResults(plan, results, cli.CLIResultPresenter{}, out)

	if !a.Config.Quiet {
		after := collector.Snapshot()
		cli.DisplaySystemFooter(sysmon.Sample(), after, after.Since(before), out)
	}
	return code
}
