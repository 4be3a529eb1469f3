package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/blcheck/internal/cli"
	"github.com/agbru/blcheck/internal/config"
	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/scan"
)

// runCheck scans a single host and prints the verdict. An untrustworthy host
// exits with ExitHostUntrusted.
func (a *Application) runCheck(ctx context.Context, checker *scan.Checker, out io.Writer) int {
	ctx, stop := a.withLifecycle(ctx)
	defer stop()

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		JSON:       a.Config.JSON,
	}
	if !outputCfg.Quiet && !outputCfg.JSON {
		cli.PrintExecutionConfig(a.Config, a.Oracle.RegisteredServerCount(), out)
	}

	start := time.Now()
	res, err := checker.CheckHost(ctx, a.Config.IP, config.EffectiveThreads(a.Config.Threads))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.ScanInterruptedError{
				Host:  a.Config.IP,
				Cause: apperrors.TimeoutError{Operation: "check", Limit: a.Config.Timeout},
			}
		}
		return cli.CLIResultPresenter{}.HandleError(err, time.Since(start), a.ErrWriter)
	}

	if err := cli.DisplayCheckResult(out, res, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !res.Trustworthy() {
		return apperrors.ExitHostUntrusted
	}
	return apperrors.ExitSuccess
}
