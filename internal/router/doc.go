// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router implements the request routing core of the API.
//
// It is made of three parts that are assembled explicitly at startup:
//   - [Table], an immutable mapping from (method, path pattern) to [Handler],
//     built once with a [TableBuilder];
//   - [Pipeline], an ordered chain of [Middleware] wrapped around dispatch;
//   - [Dispatcher], the [net/http.Handler] that resolves a request against the
//     table, runs the pipeline and turns handler failures into 500 responses.
//
// Patterns are "/"-separated segments. A segment starting with ':' is a named
// parameter matching exactly one path segment; every other segment is a
// literal. When several patterns match a path, literal segments take
// precedence over parameters, position by position from the left.
package router
