// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/validations-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteText(w, serverVersion, http.StatusOK)
	return err
}
