// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/validations-api/internal/handler/grpc"
	"github.com/MKhiriev/validations-api/internal/logger"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type grpcServer struct {
	addr string

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, addr string, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, handler)
	reflection.Register(s)

	return &grpcServer{
		addr:   addr,
		server: s,
		logger: logger,
	}
}

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.addr, err)
	}
	g.listener = ln
	g.logger.Info().Str("addr", ln.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) serve() error {
	err := g.server.Serve(g.listener)
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("gRPC server: %w", err)
}

// shutdown stops gracefully and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) closeListener() error {
	return g.listener.Close()
}

func (g *grpcServer) String() string {
	return "gRPC"
}
