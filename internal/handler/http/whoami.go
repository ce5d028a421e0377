// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/MKhiriev/validations-api/internal/utils"
)

type whoamiResponse struct {
	Subject string `json:"subject"`
}

// whoami echoes the subject of the bearer token accepted by
// withAuthorization.
func (h *Handler) whoami(w http.ResponseWriter, r *http.Request) error {
	subject, ok := utils.SubjectFromContext(r.Context())
	if !ok {
		return router.WrapStatusError(http.StatusUnauthorized, ErrNoAuthenticatedSubject.Error(), ErrNoAuthenticatedSubject)
	}

	_, err := utils.WriteJSON(w, whoamiResponse{Subject: subject}, http.StatusOK)
	return err
}

// listRoutes serves the registered route table. Only mounted in the
// development environment.
func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.table.Routes(), http.StatusOK)
	return err
}

// listRoutesByMethod serves the routes registered for one HTTP method,
// matched case-insensitively. An unknown method yields an empty list.
func (h *Handler) listRoutesByMethod(w http.ResponseWriter, r *http.Request) error {
	method := strings.ToUpper(router.Param(r, "method"))

	routes := []router.RouteInfo{}
	for _, info := range h.table.Routes() {
		if info.Method == method {
			routes = append(routes, info)
		}
	}

	_, err := utils.WriteJSON(w, routes, http.StatusOK)
	return err
}
