// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "validations_api"

	// unmatchedRoute labels requests that hit no route, keeping the route
	// label bounded.
	unmatchedRoute = "unmatched"
)

type httpMetrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge

	handler http.Handler
}

func newHTTPMetrics() *httpMetrics {
	m := &httpMetrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
}

// withMetrics records the request count, latency and in-flight gauge. The
// route label is the registered pattern, never the raw path. Requests that
// wrote nothing, e.g. cancelled ones, get status "none".
func (h *Handler) withMetrics(w http.ResponseWriter, r *http.Request, next http.Handler) {
	start := time.Now()
	h.metrics.inFlight.Inc()
	defer h.metrics.inFlight.Dec()

	rw := &responseWriter{ResponseWriter: w}
	next.ServeHTTP(rw, r)

	label := unmatchedRoute
	if rt, ok := router.RouteFromContext(r.Context()); ok {
		label = rt.Pattern
	}
	status := "none"
	if rw.status != 0 {
		status = strconv.Itoa(rw.status)
	}

	h.metrics.requests.WithLabelValues(r.Method, label, status).Inc()
	h.metrics.duration.WithLabelValues(r.Method, label).Observe(time.Since(start).Seconds())
}
