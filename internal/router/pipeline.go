// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "net/http"

// Middleware intercepts a request on its way to the route handler.
//
// next is the rest of the chain as a first-class value. Work done before
// calling next runs in registration order, work done after it runs in
// reverse order. A middleware short-circuits by writing a response without
// calling next.
type Middleware interface {
	Intercept(w http.ResponseWriter, r *http.Request, next http.Handler)
}

// MiddlewareFunc adapts an ordinary function to [Middleware].
type MiddlewareFunc func(w http.ResponseWriter, r *http.Request, next http.Handler)

func (f MiddlewareFunc) Intercept(w http.ResponseWriter, r *http.Request, next http.Handler) {
	f(w, r, next)
}

// Wrap adapts conventional func(http.Handler) http.Handler middleware, such
// as the ones from chi/middleware, to [Middleware].
func Wrap(mw func(http.Handler) http.Handler) Middleware {
	return MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		mw(next).ServeHTTP(w, r)
	})
}

// Pipeline is an ordered chain of middleware. Use must not be called once
// the pipeline is serving; [NewDispatcher] takes a snapshot of it.
type Pipeline struct {
	middlewares []Middleware
}

// NewPipeline returns a pipeline running mws in the given order.
func NewPipeline(mws ...Middleware) *Pipeline {
	p := &Pipeline{}
	p.Use(mws...)
	return p
}

// Use appends middleware to the end of the chain. Nil values are skipped.
func (p *Pipeline) Use(mws ...Middleware) {
	for _, mw := range mws {
		if mw != nil {
			p.middlewares = append(p.middlewares, mw)
		}
	}
}

// Len returns the number of middleware in the chain.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// Run passes the request through every middleware and finally to terminal.
func (p *Pipeline) Run(w http.ResponseWriter, r *http.Request, terminal http.Handler) {
	p.step(0, terminal).ServeHTTP(w, r)
}

func (p *Pipeline) step(i int, terminal http.Handler) http.Handler {
	if i >= len(p.middlewares) {
		return terminal
	}

	mw := p.middlewares[i]
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw.Intercept(w, r, p.step(i+1, terminal))
	})
}

func (p *Pipeline) clone() *Pipeline {
	if p == nil {
		return &Pipeline{}
	}
	mws := make([]Middleware, len(p.middlewares))
	copy(mws, p.middlewares)
	return &Pipeline{middlewares: mws}
}
