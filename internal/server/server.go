// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package server runs the devserver's HTTP transport: startup, signal
// handling and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/oelbekkali/colisops/internal/config"
	"github.com/oelbekkali/colisops/internal/logger"
)

// Server owns the lifecycle of the HTTP listener.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg *config.DevServerConfig, log *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

// Run serves until a termination signal arrives, then shuts the
// listener down gracefully. It blocks for the whole server lifetime.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
