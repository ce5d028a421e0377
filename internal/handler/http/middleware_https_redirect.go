// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/validations-api/internal/router"
)

const (
	forwardedProtoHeader = "X-Forwarded-Proto"
	defaultHTTPSPort     = 443
)

// withHTTPSRedirect sends plain HTTP requests to the HTTPS origin with a
// 307, preserving method and body. Requests that arrived over TLS, directly
// or through a proxy setting X-Forwarded-Proto, pass through, and so do
// routes registered with [router.AllowInsecure].
func (h *Handler) withHTTPSRedirect(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if rt, ok := router.RouteFromContext(r.Context()); ok && rt.AllowInsecure {
		next.ServeHTTP(w, r)
		return
	}
	if isSecureRequest(r) {
		next.ServeHTTP(w, r)
		return
	}

	http.Redirect(w, r, httpsLocation(r, h.server.HTTPSPort), http.StatusTemporaryRedirect)
}

func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	proto, _, _ := strings.Cut(r.Header.Get(forwardedProtoHeader), ",")
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}

// httpsLocation rebuilds the request URL on the https scheme. The port is
// left out when it is the default one.
func httpsLocation(r *http.Request, port int) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	switch {
	case port != 0 && port != defaultHTTPSPort:
		host = net.JoinHostPort(host, strconv.Itoa(port))
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}

	return "https://" + host + r.URL.RequestURI()
}
