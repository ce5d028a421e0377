// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// a listener fails, and then shuts every transport down. Shutdown stops the
// transports early; it is safe to call more than once.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// transport is a single listener managed by the server: plain HTTP, HTTPS
// or gRPC.
type transport interface {
	// listen binds the listen address. It must succeed before serve.
	listen() error
	// serve blocks until the transport is shut down. A graceful stop is
	// not an error.
	serve() error
	shutdown(ctx context.Context) error
	// closeListener releases a bound listener that never reached serve.
	closeListener() error
	String() string
}
