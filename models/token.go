// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared between the transport, service
// and client layers of validations-api.
package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token with convenience accessors for
// authorization flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) as it travels in the Authorization header.
//
// Subject is a cached copy of the "sub" claim: the caller the token was
// issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"token"`

	// Subject is the "sub" claim of the token.
	Subject string `json:"subject"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
