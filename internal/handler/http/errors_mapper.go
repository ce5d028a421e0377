// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/validations-api/internal/service"
	"github.com/MKhiriev/validations-api/internal/utils"
)

var errorStatusMap = map[error]int{
	utils.ErrMissingAuthorization: http.StatusUnauthorized,
	utils.ErrInvalidAuthorization: http.StatusUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenSignKeyIsMissing:   http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
