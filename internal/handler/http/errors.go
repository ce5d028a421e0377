// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization middleware and the handlers that
// depend on it. Their text is safe to return to clients.
var (
	// ErrNoAuthenticatedSubject is returned by handlers of protected routes
	// when the request context carries no authenticated subject.
	ErrNoAuthenticatedSubject = errors.New("request is not authenticated")

	// ErrAuthorizationRequired is the client message for a missing or
	// malformed "Authorization" header.
	ErrAuthorizationRequired = errors.New("bearer token required")
)
