// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/go-chi/chi/v5/middleware"
)

// route is a single entry of the API surface.
type route struct {
	method  string
	pattern string
	handler router.HandlerFunc
	opts    []router.RouteOption
}

func (h *Handler) routes() []route {
	// health and metrics endpoints are polled by orchestrators and scrapers
	// over plain HTTP
	plainHTTP := []router.RouteOption{router.AllowInsecure()}

	routes := []route{
		{method: http.MethodGet, pattern: "/ping", handler: h.ping, opts: plainHTTP},
		{method: http.MethodGet, pattern: "/health/live", handler: h.liveness, opts: plainHTTP},
		{method: http.MethodGet, pattern: "/health/ready", handler: h.readiness, opts: plainHTTP},
		{method: http.MethodGet, pattern: "/metrics", handler: router.Std(h.metrics.handler).ServeHTTP, opts: plainHTTP},
		{method: http.MethodGet, pattern: "/api/version", handler: h.getServerVersion},
		{method: http.MethodGet, pattern: "/api/whoami", handler: h.whoami, opts: []router.RouteOption{router.RequireAuth()}},
	}

	if h.app.IsDevelopment() {
		routes = append(routes,
			route{method: http.MethodGet, pattern: "/api/routes", handler: h.listRoutes},
			route{method: http.MethodGet, pattern: "/api/routes/:method", handler: h.listRoutesByMethod},
		)
	}

	return routes
}

// pipeline assembles the middleware every request crosses, outermost first.
func (h *Handler) pipeline() *router.Pipeline {
	p := router.NewPipeline(
		router.Wrap(middleware.RealIP),
		router.Wrap(h.withTraceID),
		router.Wrap(h.withLogging),
		router.MiddlewareFunc(h.withSecureHeaders),
		router.MiddlewareFunc(h.withMetrics),
	)

	if h.server.RedirectHTTPS {
		p.Use(router.MiddlewareFunc(h.withHTTPSRedirect))
	}
	if h.server.RequestTimeout > 0 {
		p.Use(router.Wrap(middleware.Timeout(h.server.RequestTimeout)))
	}
	p.Use(router.MiddlewareFunc(h.withAuthorization))

	return p
}

// Init registers every route and returns the dispatcher serving them. A
// duplicate registration is returned as an error and must abort startup.
func (h *Handler) Init() (*router.Dispatcher, error) {
	builder := router.NewTableBuilder()
	for _, rt := range h.routes() {
		if err := builder.Register(rt.method, rt.pattern, rt.handler, rt.opts...); err != nil {
			return nil, fmt.Errorf("error registering route %s %s: %w", rt.method, rt.pattern, err)
		}
	}

	h.table = builder.Build()
	h.logger.Info().Int("routes", h.table.Len()).Msg("http routes registered")
	if h.app.IsDevelopment() {
		for _, info := range h.table.Routes() {
			h.logger.Info().
				Str("method", info.Method).
				Str("pattern", info.Pattern).
				Bool("auth", info.AuthRequired).
				Msg("route")
		}
	}

	return router.NewDispatcher(h.table, h.pipeline(), h.logger), nil
}

// Routes lists the registered routes. It is empty before Init.
func (h *Handler) Routes() []router.RouteInfo {
	if h.table == nil {
		return nil
	}
	return h.table.Routes()
}
