// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It binds the plain HTTP, HTTPS and gRPC listeners that are configured,
// flips the readiness flag once every listener is bound, and on a
// termination signal withdraws readiness before draining all transports
// within the shutdown timeout.
package server
