// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/validations-api/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.HealthService.Liveness(r.Context()), http.StatusOK)
	return err
}

// readiness reports 503 until the server is started and every dependency
// check passes.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) error {
	report := h.services.HealthService.Readiness(r.Context())

	status := http.StatusOK
	if !report.Ready() {
		status = http.StatusServiceUnavailable
	}

	_, err := utils.WriteJSON(w, report, status)
	return err
}
