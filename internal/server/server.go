// Package server runs the backend HTTP transport: startup, signal handling
// and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
)

// Server is the lifecycle contract of the backend transport. RunServer
// blocks until shutdown is requested; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoAddressConfigured
	}

	return &server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
			IdleTimeout:  2 * time.Minute,
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Err(err).Msg("HTTP server ListenAndServe")
		stop()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
