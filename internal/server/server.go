// Package server exposes the evaluator over a small JSON HTTP API.
//
// Routes:
//
//	GET  /healthz        liveness
//	POST /api/solve      {"tiles":[...]} or {"input":"02, 04, 42"}
//	POST /api/analyze    same body; degree/connectivity report
//	GET  /api/examples   sample inputs with their results
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/domino/solver"
)

// Options configures the server.
type Options struct {
	// SkipPrecheck disables the Euler pre-check, which otherwise answers
	// infeasible tile sets without searching.
	SkipPrecheck bool

	// RequestTimeout bounds every /api request; defaults to 10s. A search
	// cut short by it is answered with 503.
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown; defaults to 5s.
	ShutdownTimeout time.Duration
}

// Server wires handlers, middleware and logging.
type Server struct {
	log    *slog.Logger
	opts   Options
	router chi.Router
}

// New builds a Server. A nil logger means slog.Default().
func New(logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	s := &Server{log: logger, opts: opts, router: chi.NewRouter()}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(requestLogger(s.log))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(s.opts.RequestTimeout))
		r.Post("/solve", s.handleSolve)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/examples", s.handleExamples)
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// solverOptions returns the per-request search options.
func (s *Server) solverOptions(ctx context.Context) []solver.Option {
	opts := []solver.Option{solver.WithContext(ctx)}
	if !s.opts.SkipPrecheck {
		opts = append(opts, solver.WithEulerPrecheck())
	}

	return opts
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. In-flight searches see the cancellation through their
// request context.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg.Go(func() error {
		s.log.Info("listening", "addr", addr, "precheck", !s.opts.SkipPrecheck, "timeout", s.opts.RequestTimeout)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
