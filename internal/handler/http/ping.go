// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/validations-api/internal/utils"
)

const pong = "pong"

// ping answers liveness probes with a constant body. Request headers and
// body are ignored.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteText(w, pong, http.StatusOK)
	return err
}
