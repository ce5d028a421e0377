// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrInvalidAddress      = errors.New("address must include host and scheme")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("endpoint not found")
	ErrNotReady            = errors.New("server is not ready")
	ErrGatewayTimeout      = errors.New("request timed out on server")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)
