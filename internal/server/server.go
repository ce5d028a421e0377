// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/handler"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/service"
	"golang.org/x/sync/errgroup"
)

type server struct {
	transports []transport
	health     service.HealthService

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
	stopped         chan struct{}

	logger *logger.Logger
}

// NewServer builds a transport for every configured address. The HTTP
// dispatcher is initialized here, so route registration errors surface
// before anything listens.
func NewServer(handlers *handler.Handlers, health service.HealthService, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		health:          health,
		shutdownTimeout: cfg.ShutdownTimeout,
		stopped:         make(chan struct{}),
		logger:          logger,
	}

	if handlers.HTTP != nil {
		dispatcher, err := handlers.HTTP.Init()
		if err != nil {
			return nil, fmt.Errorf("error initializing HTTP handler: %w", err)
		}

		if cfg.HTTPAddress != "" {
			s.transports = append(s.transports, newHTTPServer("HTTP", cfg.HTTPAddress, dispatcher, "", "", logger))
		}
		if cfg.HTTPSAddress != "" {
			if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
				return nil, errTLSFilesMissing
			}
			s.transports = append(s.transports, newHTTPServer("HTTPS", cfg.HTTPSAddress, dispatcher, cfg.TLSCertFile, cfg.TLSKeyFile, logger))
		}
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer binds every listener, marks the application ready and serves
// until ctx is cancelled, SIGTERM/SIGINT/SIGQUIT arrives or a transport
// fails. Readiness is withdrawn before the transports drain.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			s.closeListeners(s.transports[:i])
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range s.transports {
		g.Go(t.serve)
	}

	s.health.SetReady(true)
	s.logger.Info().Msg("server is ready")

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.stopped:
		}
		s.logger.Info().Msg("stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// Shutdown withdraws readiness and stops all transports concurrently.
func (s *server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		defer close(s.stopped)
		s.health.SetReady(false)

		var (
			mu   sync.Mutex
			errs []error
			wg   sync.WaitGroup
		)
		for _, t := range s.transports {
			wg.Go(func() {
				if err := t.shutdown(ctx); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			})
		}
		wg.Wait()

		s.shutdownErr = errors.Join(errs...)
	})

	return s.shutdownErr
}

func (s *server) closeListeners(transports []transport) {
	for _, t := range transports {
		if err := t.closeListener(); err != nil {
			s.logger.Err(err).Str("transport", t.String()).Msg("error closing listener")
		}
	}
}
