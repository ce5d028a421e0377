// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

var secureHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
}

// withSecureHeaders sets the security headers carried by every response,
// including 404s and failures.
func (h *Handler) withSecureHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	header := w.Header()
	for name, value := range secureHeaders {
		header.Set(name, value)
	}

	next.ServeHTTP(w, r)
}
