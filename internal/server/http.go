// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/validations-api/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	name     string
	addr     string
	certFile string
	keyFile  string

	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// newHTTPServer builds a plain HTTP server, or an HTTPS one when both TLS
// files are set.
func newHTTPServer(name, addr string, handler http.Handler, certFile, keyFile string, logger *logger.Logger) *httpServer {
	return &httpServer{
		name:     name,
		addr:     addr,
		certFile: certFile,
		keyFile:  keyFile,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          logger.StdLogger(),
		},
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("%s listen on %s: %w", h.name, h.addr, err)
	}
	h.listener = ln
	h.logger.Info().Str("addr", ln.Addr().String()).Msgf("%s server listening", h.name)
	return nil
}

func (h *httpServer) serve() error {
	var err error
	if h.certFile != "" {
		err = h.server.ServeTLS(h.listener, h.certFile, h.keyFile)
	} else {
		err = h.server.Serve(h.listener)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("%s server: %w", h.name, err)
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msgf("%s server shutdown", h.name)
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) closeListener() error {
	return h.listener.Close()
}

func (h *httpServer) String() string {
	return h.name
}
