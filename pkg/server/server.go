// Package server provides the HTTP server lifecycle: engine construction,
// middleware wiring, signal handling, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/middleware"
	mwopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/middleware"
	httpopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/server/http"
)

// Server wraps the gin engine and the underlying http.Server with a
// unified run/stop lifecycle.
type Server struct {
	engine          *gin.Engine
	srv             *http.Server
	shutdownTimeout time.Duration
	closers         []func() error
}

// Option configures a Server.
type Option func(*Server)

// WithShutdownTimeout sets the graceful shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// WithCloser registers a resource to close after the listener has
// drained, e.g. the store connection. Closers run in registration order.
func WithCloser(close func() error) Option {
	return func(s *Server) {
		s.closers = append(s.closers, close)
	}
}

// New creates a Server with the standard middleware chain: recovery,
// request ID, request logging, and the CORS origin gate, in that order.
// The origin gate therefore runs before any route handler.
func New(httpOptions *httpopts.Options, corsOptions *mwopts.CORSOptions, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.CORSWithOptions(*corsOptions))

	s := &Server{
		engine: engine,
		srv: &http.Server{
			Addr:         httpOptions.Addr,
			Handler:      engine,
			ReadTimeout:  httpOptions.ReadTimeout,
			WriteTimeout: httpOptions.WriteTimeout,
			IdleTimeout:  httpOptions.IdleTimeout,
		},
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Engine returns the gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the server and blocks until a termination signal arrives,
// then shuts down gracefully: stop accepting connections, drain in-flight
// requests within the shutdown timeout, close registered resources.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		logger.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.Stop(ctx)
}

// Stop shuts the server down gracefully and closes registered resources.
func (s *Server) Stop(ctx context.Context) error {
	var errs []error

	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	logger.Info("HTTP server stopped")

	for _, close := range s.closers {
		if err := close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}
	return nil
}
