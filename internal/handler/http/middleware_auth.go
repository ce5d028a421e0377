// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/MKhiriev/validations-api/internal/service"
	"github.com/MKhiriev/validations-api/internal/utils"
)

const authenticateHeader = "WWW-Authenticate"

// withAuthorization enforces bearer token authentication on routes
// registered with [router.RequireAuth]. Anonymous routes and unmatched
// requests pass through untouched.
//
// On success the token subject is stored in the request context under
// [utils.SubjectCtxKey]. Otherwise the request is short-circuited with
// 401 Unauthorized and a "WWW-Authenticate: Bearer" challenge:
//   - the "Authorization" header is absent or not a bearer header;
//   - the token is expired, signed with another key, or issued by someone
//     else ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) withAuthorization(w http.ResponseWriter, r *http.Request, next http.Handler) {
	rt, ok := router.RouteFromContext(r.Context())
	if !ok || !rt.AuthRequired {
		next.ServeHTTP(w, r)
		return
	}

	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		log.Info().Err(err).Str("route", rt.String()).Msg("authorization header rejected")
		unauthorized(w, ErrAuthorizationRequired.Error(), "")
		return
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		status := statusFromError(err)
		if status != http.StatusUnauthorized {
			log.Err(err).Str("route", rt.String()).Msg("error occurred during parsing token")
			router.WriteError(w, status, http.StatusText(status))
			return
		}

		log.Info().Err(err).Str("route", rt.String()).Msg("token rejected")
		msg := http.StatusText(http.StatusUnauthorized)
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			msg = service.ErrTokenIsExpiredOrInvalid.Error()
		}
		unauthorized(w, msg, "invalid_token")
		return
	}

	next.ServeHTTP(w, r.WithContext(utils.WithSubject(ctx, token.Subject)))
}

// unauthorized writes a 401 with a Bearer challenge. errorCode follows
// RFC 6750 and is omitted when the request carried no credentials.
func unauthorized(w http.ResponseWriter, msg, errorCode string) {
	challenge := "Bearer"
	if errorCode != "" {
		challenge += ` error="` + errorCode + `"`
	}
	w.Header().Set(authenticateHeader, challenge)
	router.WriteError(w, http.StatusUnauthorized, msg)
}
