package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agbru/blcheck/internal/config"
	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/logging"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps err onto its status code. Validation failures carry
// their own client-facing message.
func writeFailure(w http.ResponseWriter, err error) {
	msg := err.Error()
	var invalid apperrors.ValidationError
	if errors.As(err, &invalid) {
		msg = invalid.Message
	}
	writeError(w, apperrors.HTTPStatus(err), msg)
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// parseThreads reads the optional threads parameter; absent means 0.
func parseThreads(raw string, maxThreads int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > maxThreads {
		return 0, apperrors.ValidationError{
			Field:   "threads",
			Message: fmt.Sprintf("threads must be an integer between 0 and %d, got %q", maxThreads, raw),
		}
	}
	return n, nil
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	ip := q.Get("ip")
	if !config.ValidHostIP(ip) {
		writeFailure(w, apperrors.ValidationError{Field: "ip", Message: "Invalid IP address: " + ip})
		return
	}
	threads, err := parseThreads(q.Get("threads"), s.security.MaxThreads)
	if err != nil {
		writeFailure(w, err)
		return
	}

	ctx := r.Context()
	if s.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scanTimeout)
		defer cancel()
	}

	res, err := s.checker.CheckHost(ctx, ip, config.EffectiveThreads(threads))
	if err != nil {
		switch {
		case apperrors.IsContextError(err) && r.Context().Err() != nil:
			s.logger.Debug("client went away during check",
				logging.String("ip", ip),
				logging.String("request_id", RequestID(r.Context())))
		default:
			if errors.Is(err, context.DeadlineExceeded) {
				err = apperrors.ScanInterruptedError{
					Host:  ip,
					Cause: apperrors.TimeoutError{Operation: "check", Limit: s.scanTimeout},
				}
			}
			s.logger.Error("check failed", err,
				logging.String("ip", ip),
				logging.String("request_id", RequestID(r.Context())))
		}
		writeFailure(w, err)
		return
	}
	s.metrics.RecordScan(res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("metrics: method not allowed", logging.String("method", r.Method))
		methodNotAllowed(w)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
