// Package server exposes the mediant approximation engine over an HTTP API
// with Prometheus instrumentation and graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/farey"
	"github.com/agbru/fareycalc/internal/logging"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxIterations is the default bisection iteration ceiling per request.
	MaxIterations int
	// SearchTimeout bounds each individual search.
	SearchTimeout time.Duration
	// ShutdownTimeout bounds the graceful shutdown drain.
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end for the approximation engine.
type Server struct {
	config  Config
	logger  logging.Logger
	metrics *Metrics
}

// New creates a Server with the given configuration.
//
// Parameters:
//   - config: The server configuration; zero fields get sensible defaults.
//   - logger: The structured logger for request and lifecycle events.
//
// Returns:
//   - *Server: The initialized server.
func New(config Config, logger logging.Logger) *Server {
	if config.MaxIterations <= 0 {
		config.MaxIterations = farey.DefaultMaxIterations
	}
	if config.SearchTimeout <= 0 {
		config.SearchTimeout = 30 * time.Second
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		config:  config,
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Run starts the HTTP server and blocks until ctx is canceled or the listener
// fails. On cancellation the server drains in-flight requests before
// returning.
//
// Parameters:
//   - ctx: Cancellation signal for the server lifecycle.
//
// Returns:
//   - error: The listener failure, or nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", logging.String("addr", s.config.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.WrapError(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/approx", s.metricsMiddleware(s.handleApprox))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.handleMetrics)
	return mux
}

// statusRecorder captures the status code written by a handler so that the
// middleware can label the request counter with it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware tracks in-flight and total request counts around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.CountRequest(r.URL.Path, strconv.Itoa(rec.status))
	}
}

// approxResponse is the JSON body for a successful approximation.
type approxResponse struct {
	Target      float64 `json:"target"`
	Numerator   uint64  `json:"numerator"`
	Denominator uint64  `json:"denominator"`
	Value       float64 `json:"value"`
	Iterations  int     `json:"iterations"`
}

// errorResponse is the JSON body for a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// handleApprox serves GET /api/v1/approx?x=<number>[&max_iterations=<n>].
func (s *Server) handleApprox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	rawX := r.URL.Query().Get("x")
	if rawX == "" {
		s.writeError(w, http.StatusBadRequest, apperrors.NewInputError("x", "query parameter is required"))
		return
	}
	target, err := strconv.ParseFloat(rawX, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.NewInputError("x", "%q is not a number", rawX))
		return
	}

	maxIterations := s.config.MaxIterations
	if raw := r.URL.Query().Get("max_iterations"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, apperrors.NewInputError("max_iterations", "%q is not a positive integer", raw))
			return
		}
		maxIterations = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.SearchTimeout)
	defer cancel()

	engine := farey.NewEngine(farey.WithMaxIterations(maxIterations))

	start := time.Now()
	result, err := engine.Search(ctx, target)
	if err != nil {
		s.writeError(w, statusForSearchError(err), err)
		return
	}
	s.metrics.ObserveSearch(result.Iterations, time.Since(start))

	s.logger.Info("approximation served",
		logging.Float64("target", target),
		logging.String("fraction", result.Fraction.String()),
		logging.Int("iterations", result.Iterations))

	s.writeJSON(w, http.StatusOK, approxResponse{
		Target:      target,
		Numerator:   result.Fraction.Numerator(),
		Denominator: result.Fraction.Denominator(),
		Value:       result.Fraction.Value(),
		Iterations:  result.Iterations,
	})
}

// statusForSearchError maps a search failure to an HTTP status code.
func statusForSearchError(err error) int {
	switch apperrors.ExitCodeFor(err) {
	case apperrors.ExitErrorInvalidInput:
		return http.StatusBadRequest
	case apperrors.ExitErrorOverflow, apperrors.ExitErrorNonConvergence:
		return http.StatusUnprocessableEntity
	case apperrors.ExitErrorCanceled:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics serves GET /metrics in the Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// writeJSON writes v as a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", err)
	}
}

// writeError writes err as a JSON error response and logs it.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if s.logger != nil {
		s.logger.Error("request failed", err, logging.Int("status", status))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
