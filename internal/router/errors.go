// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"errors"
	"fmt"
	"net/http"
)

// Registration errors. They are returned by [TableBuilder.Register] and are
// fatal to startup: a process must not serve with an ambiguous route table.
var (
	// ErrDuplicateRoute is matched by every [*DuplicateRouteError].
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrInvalidPattern is returned for empty patterns, empty parameter names
	// and parameter names repeated within one pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrInvalidMethod is returned when the method is not a known HTTP verb.
	ErrInvalidMethod = errors.New("invalid route method")

	// ErrNilHandler is returned when a route is registered without a handler.
	ErrNilHandler = errors.New("nil route handler")
)

// DuplicateRouteError reports an attempt to register a (method, pattern) pair
// whose normalized form is already present in the table.
type DuplicateRouteError struct {
	Method string

	// Pattern is the pattern that was rejected.
	Pattern string

	// Existing is the pattern of the route already registered under the same
	// normalized key. It differs from Pattern only by parameter names or
	// redundant slashes.
	Existing string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route %s %s: conflicts with %s %s", e.Method, e.Pattern, e.Method, e.Existing)
}

// Is makes errors.Is(err, ErrDuplicateRoute) succeed.
func (e *DuplicateRouteError) Is(target error) bool {
	return target == ErrDuplicateRoute
}

// HandlerFailure is any error or panic that escaped a route handler. It is
// logged with full detail by the [Dispatcher] and never shown to the client.
type HandlerFailure struct {
	// Route is "METHOD /pattern" of the failing route.
	Route string

	// Err is the error returned by the handler, nil if the handler panicked.
	Err error

	// Panic is the recovered value, nil if the handler returned an error.
	Panic any

	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

func (f *HandlerFailure) Error() string {
	if f.Panic != nil {
		return fmt.Sprintf("handler %s panicked: %v", f.Route, f.Panic)
	}
	return fmt.Sprintf("handler %s failed: %v", f.Route, f.Err)
}

func (f *HandlerFailure) Unwrap() error {
	return f.Err
}

// StatusError is an error a handler returns on purpose to answer with a
// specific status and a message that is safe to show to the client.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

// NewStatusError returns a [*StatusError]. An empty msg is replaced with the
// standard status text.
func NewStatusError(status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &StatusError{Status: status, Message: msg}
}

// WrapStatusError is like [NewStatusError] but keeps err as the cause for
// server-side logging.
func WrapStatusError(status int, msg string, err error) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &StatusError{Status: status, Message: msg, Err: err}
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
