// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the database checker. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDSNIsEmpty is returned when a database connection is requested
	// without a DSN.
	ErrDSNIsEmpty = errors.New("database DSN is empty")

	// ErrDatabaseUnreachable is returned when the database does not answer
	// a ping.
	ErrDatabaseUnreachable = errors.New("database is unreachable")

	// ErrBuildingSQLQuery is returned when constructing the probe query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the probe query fails or returns an
	// unexpected result.
	ErrExecutingQuery = errors.New("error executing sql query")
)
