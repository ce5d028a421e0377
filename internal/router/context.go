// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"context"
	"net/http"
)

type contextKey int

const (
	routeCtxKey contextKey = iota
	paramsCtxKey
)

func withRoute(ctx context.Context, rt *Route, params Params) context.Context {
	ctx = context.WithValue(ctx, routeCtxKey, rt)
	return context.WithValue(ctx, paramsCtxKey, params)
}

// RouteFromContext returns the route matched for the request. It is set
// before the pipeline runs, so middleware can inspect it; ok is false for
// requests that matched nothing.
func RouteFromContext(ctx context.Context) (*Route, bool) {
	rt, ok := ctx.Value(routeCtxKey).(*Route)
	return rt, ok && rt != nil
}

// ParamsFromContext returns the path parameters bound for the request.
func ParamsFromContext(ctx context.Context) Params {
	params, _ := ctx.Value(paramsCtxKey).(Params)
	return params
}

// Param returns the named path parameter or "" if it is not bound.
func Param(r *http.Request, name string) string {
	return ParamsFromContext(r.Context())[name]
}
