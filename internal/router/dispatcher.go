// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/validations-api/internal/logger"
)

const (
	msgNotFound       = "endpoint not found"
	msgInternalError  = "internal server error"
	msgTimeout        = "request timed out"
	routeNotFoundName = "<no route>"
)

// Dispatcher resolves requests against a [Table] and runs them through a
// [Pipeline]. It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	table    *Table
	pipeline *Pipeline
	logger   *logger.Logger

	notFound http.Handler
}

// NewDispatcher assembles a dispatcher. The pipeline is copied, so later
// calls to its Use method do not affect the dispatcher.
func NewDispatcher(table *Table, pipeline *Pipeline, log *logger.Logger) *Dispatcher {
	if table == nil {
		table = NewTableBuilder().Build()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Dispatcher{
		table:    table,
		pipeline: pipeline.clone(),
		logger:   log,
		notFound: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			WriteError(w, http.StatusNotFound, msgNotFound)
		}),
	}
}

// Table returns the route table the dispatcher serves.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// ServeHTTP implements [http.Handler].
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tw := &trackingWriter{ResponseWriter: w}
	defer func() {
		if rvr := recover(); rvr != nil {
			d.middlewarePanic(tw, r, rvr)
		}
	}()

	route, params, ok := d.table.Match(r.Method, r.URL.EscapedPath())
	if !ok {
		// unmatched requests still cross the pipeline so global headers apply
		d.pipeline.Run(tw, r, d.notFound)
		return
	}

	r = r.WithContext(withRoute(r.Context(), route, params))
	d.pipeline.Run(tw, r, d.terminal(route))
}

// terminal wraps the route handler as the last step of the pipeline.
func (d *Dispatcher) terminal(route *Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := newBufferedResponse()
		err := invoke(route, buf, r)

		if ctxErr := r.Context().Err(); ctxErr != nil {
			logger.FromContextOr(r.Context(), d.logger).Warn().
				Err(ctxErr).
				Str("route", route.String()).
				Msg("request cancelled before a response was produced")
			// a client that went away gets nothing; an expired deadline
			// still answers in the JSON error format
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				WriteError(w, http.StatusGatewayTimeout, msgTimeout)
			}
			return
		}

		if err != nil {
			d.fail(w, r, route, err)
			return
		}

		if err := buf.commit(w); err != nil {
			logger.FromContextOr(r.Context(), d.logger).Debug().
				Err(err).
				Str("route", route.String()).
				Msg("error writing response")
		}
	})
}

func invoke(route *Route, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			//nolint:errorlint // sentinel panic value must be compared directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			err = &HandlerFailure{Route: route.String(), Panic: rvr, Stack: debug.Stack()}
		}
	}()

	if herr := route.Handler.ServeHTTP(w, r); herr != nil {
		return &HandlerFailure{Route: route.String(), Err: herr}
	}

	return nil
}

// fail writes the response for a failed handler. Client errors keep their
// public message; everything else becomes a generic 500.
func (d *Dispatcher) fail(w http.ResponseWriter, r *http.Request, route *Route, err error) {
	log := logger.FromContextOr(r.Context(), d.logger)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError {
		log.Info().
			Err(err).
			Str("route", route.String()).
			Int("status", statusErr.Status).
			Msg("request rejected by handler")
		WriteError(w, statusErr.Status, statusErr.Message)
		return
	}

	event := log.Error().
		Err(err).
		Str("route", route.String()).
		Str("method", r.Method).
		Str("path", r.URL.Path)

	var failure *HandlerFailure
	if errors.As(err, &failure) && failure.Panic != nil {
		event = event.Interface("panic", failure.Panic).Bytes("stack", failure.Stack)
	}
	event.Msg("handler failure")

	WriteError(w, http.StatusInternalServerError, msgInternalError)
}

// middlewarePanic handles panics raised by middleware rather than by the
// route handler.
func (d *Dispatcher) middlewarePanic(w *trackingWriter, r *http.Request, rvr any) {
	//nolint:errorlint // sentinel panic value must be compared directly
	if rvr == http.ErrAbortHandler {
		panic(rvr)
	}

	route := routeNotFoundName
	if rt, ok := RouteFromContext(r.Context()); ok {
		route = rt.String()
	}

	logger.FromContextOr(r.Context(), d.logger).Error().
		Interface("panic", rvr).
		Bytes("stack", debug.Stack()).
		Str("route", route).
		Msg("middleware panic")

	if !w.wroteHeader {
		WriteError(w, http.StatusInternalServerError, msgInternalError)
	}
}
