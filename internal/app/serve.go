package app

import (
	"context"
	"os/signal"
	"syscall"

	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/logging"
	"github.com/agbru/blcheck/internal/scan"
	"github.com/agbru/blcheck/internal/server"
)

// runServe runs the HTTP API until ctx ends or a termination signal arrives.
// The configured timeout bounds each scan, not the server's lifetime.
func (a *Application) runServe(ctx context.Context, checker *scan.Checker) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	security := server.DefaultSecurityConfig()
	security.MaxThreads = a.Config.MaxThreads

	srv := server.New(a.Config.Addr, checker,
		server.WithLogger(a.Logger),
		server.WithSecurityConfig(security),
		server.WithMetrics(server.NewMetrics()),
		server.WithScanTimeout(a.Config.Timeout),
	)
	if err := srv.Start(ctx); err != nil {
		a.Logger.Error("server stopped", err, logging.String("addr", a.Config.Addr))
		return apperrors.ExitErrorGeneric
	}
	a.Logger.Info("server stopped", logging.String("addr", a.Config.Addr))
	return apperrors.ExitSuccess
}
