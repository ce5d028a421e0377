// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "net/http"

// Handler serves a matched route. A returned error is a handler failure
// unless it is a [*StatusError]; either way the [Dispatcher] writes the
// response for it, so the handler must not write anything itself on error.
type Handler interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc adapts an ordinary function to [Handler].
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// Std adapts a standard [http.Handler], which cannot report failures, to
// [Handler].
func Std(h http.Handler) Handler {
	return HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		h.ServeHTTP(w, r)
		return nil
	})
}
