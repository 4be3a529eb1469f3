package scan

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/logging"
)

const tracerName = "github.com/agbru/blcheck/internal/scan"

// Checker runs parallel blacklist scans against an injected Oracle using a
// fixed Policy. A Checker is safe for concurrent use; each CheckHost call
// owns its scan state.
type Checker struct {
	oracle Oracle
	policy Policy
	logger logging.Logger
	tracer trace.Tracer
}

// Option configures a Checker during construction.
type Option func(*Checker)

// WithLogger sets the logger used for scan summaries and verdict-report
// failures.
func WithLogger(l logging.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithTracer sets the tracer used for the per-scan span. The global otel
// tracer provider is used otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(c *Checker) { c.tracer = t }
}

// NewChecker creates a Checker for the given oracle and policy.
func NewChecker(oracle Oracle, policy Policy, opts ...Option) (*Checker, error) {
	if oracle == nil {
		return nil, apperrors.NewInvalidArgument("oracle", "cannot be nil")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	c := &Checker{
		oracle: oracle,
		policy: policy,
		logger: logging.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Policy returns the policy the checker was built with.
func (c *Checker) Policy() Policy { return c.policy }

// CheckHost scans every registered server for host using workers parallel
// goroutines and returns the verdict.
//
// A workers value below 1 is treated as 1. The scan stops early once the
// number of matches reaches the policy's alarm count. The oracle is told the
// verdict exactly once, after all workers have joined.
//
// Parameters:
//   - ctx: Cancels the scan; cancellation surfaces as ScanInterruptedError.
//   - host: The host identifier; must not be blank.
//   - workers: The requested number of workers.
//
// Returns:
//   - Result: The verdict and scan statistics.
//   - error: InvalidArgumentError for contract violations, ScanInterruptedError
//     when any worker fails. No Result accompanies an error.
func (c *Checker) CheckHost(ctx context.Context, host string, workers int) (Result, error) {
	if strings.TrimSpace(host) == "" {
		return Result{}, apperrors.NewInvalidArgument("host", "cannot be empty")
	}
	total := c.oracle.RegisteredServerCount()
	workers = max(workers, 1)

	ctx, span := c.tracer.Start(ctx, "scan.CheckHost", trace.WithAttributes(
		attribute.String("host.id", host),
		attribute.Int("scan.workers", workers),
		attribute.Int("scan.total_servers", total),
	))
	defer span.End()

	start := time.Now()
	parts, err := PartitionRange(total, workers)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	state := newScanState(c.policy.AlarmCount)
	crew := make([]*worker, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		w := &worker{id: i, host: host, part: part, oracle: c.oracle, state: state}
		crew[i] = w
		if part.Empty() {
			continue
		}
		g.Go(func() error { return w.run(gctx) })
	}
	if err := g.Wait(); err != nil {
		interrupted := apperrors.ScanInterruptedError{Host: host, Cause: err}
		c.logger.Error("blacklist scan interrupted", err,
			logging.String("host", host),
			logging.Int64("checked", state.checked.Load()),
			logging.Int("total", total))
		span.RecordError(err)
		span.SetStatus(codes.Error, interrupted.Error())
		return Result{}, interrupted
	}

	matches := make([]int, 0, state.matches.Load())
	for _, w := range crew {
		matches = append(matches, w.found...)
	}
	trustworthy := state.matches.Load() < int64(c.policy.AlarmCount)
	checked := int(state.checked.Load())

	c.logger.Info("checked blacklists",
		logging.String("host", host),
		logging.Int("checked", checked),
		logging.Int("total", total),
		logging.Int("matches", len(matches)),
		logging.Bool("trustworthy", trustworthy))

	if err := c.oracle.ReportVerdict(host, trustworthy); err != nil {
		c.logger.Error("verdict report failed", err, logging.String("host", host))
	}

	res, err := NewResult(host, trustworthy, matches, checked, total, time.Since(start), workers)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	span.SetAttributes(
		attribute.Bool("scan.trustworthy", trustworthy),
		attribute.Int("scan.checked_servers", checked),
		attribute.Int("scan.matches", len(matches)),
	)
	return res, nil
}
