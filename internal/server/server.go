package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agbru/blcheck/internal/logging"
	"github.com/agbru/blcheck/internal/scan"
)

const (
	checkPath   = "/api/v1/blacklist/check"
	healthPath  = "/health"
	metricsPath = "/metrics"

	// unmatchedRoute labels responses for paths no route claims.
	unmatchedRoute = "unmatched"

	shutdownTimeout = 10 * time.Second
)

// Checker runs one blacklist scan. *scan.Checker satisfies it.
type Checker interface {
	CheckHost(ctx context.Context, host string, workers int) (scan.Result, error)
}

// Server is the HTTP front end of the checker.
type Server struct {
	addr        string
	checker     Checker
	security    SecurityConfig
	scanTimeout time.Duration
	metrics     *Metrics
	logger      logging.Logger
	router      chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithMetrics shares a Metrics instance.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithScanTimeout bounds each scan triggered by a request. Zero disables
// the bound; the request context still applies.
func WithScanTimeout(d time.Duration) Option {
	return func(s *Server) { s.scanTimeout = d }
}

// New builds a Server listening on addr that delegates scans to checker.
func New(addr string, checker Checker, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		checker:  checker,
		security: DefaultSecurityConfig(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)

	r.HandleFunc(checkPath, s.wrap(s.handleCheck))
	r.HandleFunc(healthPath, s.wrap(s.handleHealth))
	r.HandleFunc(metricsPath, s.wrap(s.handleMetrics))
	r.NotFound(s.wrap(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}))
	return r
}

func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(s.logRequests(SecurityMiddleware(s.security, h)))
}

// Handler returns the routed handler, for embedding or httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves HTTP until ctx is done, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))

	select {
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	}
}

// metricsMiddleware tracks active requests and response codes.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		s.metrics.RecordResponse(routeLabel(r), statusOf(ww))
	}
}

// routeLabel names the route that served r, never the raw request path.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
		return unmatchedRoute
	}
	switch r.URL.Path {
	case checkPath, healthPath, metricsPath:
		return r.URL.Path
	}
	return unmatchedRoute
}

func (s *Server) logRequests(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		}
		next(ww, r)
		s.logger.Debug("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", statusOf(ww)),
			logging.Duration("duration", time.Since(start)),
			logging.String("request_id", RequestID(r.Context())))
	}
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
