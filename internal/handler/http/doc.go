// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It declares the API routes, their handlers, and the middleware pipeline
// they run through. Cross-cutting concerns such as request tracing, access
// logging, secure headers, HTTPS redirection, request timeouts, and bearer
// token authorization are handled in this package before requests reach the
// service layer. Routing and dispatch themselves live in internal/router.
package http
