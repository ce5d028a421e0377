// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
	http.MethodConnect: {},
	http.MethodTrace:   {},
}

// Params holds path parameters bound by name.
type Params map[string]string

// Route is a (method, pattern) binding to a handler.
type Route struct {
	Method string

	// Pattern is the canonical pattern, e.g. "/users/:id".
	Pattern string

	Handler Handler

	// AuthRequired marks routes that the authorization middleware must
	// protect. Routes are anonymous by default.
	AuthRequired bool

	// AllowInsecure exempts the route from HTTPS redirection.
	AllowInsecure bool

	pattern pattern
}

func (rt *Route) String() string {
	return rt.Method + " " + rt.Pattern
}

// RouteOption configures a route at registration time.
type RouteOption func(*Route)

// RequireAuth marks the route as protected.
func RequireAuth() RouteOption {
	return func(rt *Route) {
		rt.AuthRequired = true
	}
}

// AllowInsecure lets the route be served over plain HTTP when HTTPS
// redirection is enabled.
func AllowInsecure() RouteOption {
	return func(rt *Route) {
		rt.AllowInsecure = true
	}
}

// RouteInfo is the public description of a registered route.
type RouteInfo struct {
	Method       string `json:"method"`
	Pattern      string `json:"pattern"`
	AuthRequired bool   `json:"auth_required"`
}

type routeKey struct {
	method  string
	pattern string
}

// TableBuilder collects routes before the table is frozen with Build.
// It is not safe for concurrent use.
type TableBuilder struct {
	routes []*Route
	keys   map[routeKey]*Route
}

// NewTableBuilder returns an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		keys: make(map[routeKey]*Route),
	}
}

// Register adds a route. It fails with a [*DuplicateRouteError] if the same
// method and normalized pattern are already registered; the builder is left
// unchanged on any error.
func (b *TableBuilder) Register(method, rawPattern string, h Handler, opts ...RouteOption) error {
	method = strings.ToUpper(strings.TrimSpace(method))
	if _, ok := knownMethods[method]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if h == nil {
		return fmt.Errorf("%w: %s %s", ErrNilHandler, method, rawPattern)
	}

	p, err := parsePattern(rawPattern)
	if err != nil {
		return err
	}

	key := routeKey{method: method, pattern: p.key}
	if existing, ok := b.keys[key]; ok {
		return &DuplicateRouteError{Method: method, Pattern: rawPattern, Existing: existing.Pattern}
	}

	rt := &Route{
		Method:  method,
		Pattern: p.canonical,
		Handler: h,
		pattern: p,
	}
	for _, opt := range opts {
		opt(rt)
	}

	b.keys[key] = rt
	b.routes = append(b.routes, rt)

	return nil
}

// Build freezes the registered routes into a [Table]. The builder may keep
// being used; later registrations do not affect tables already built.
func (b *TableBuilder) Build() *Table {
	t := &Table{
		static:  make(map[routeKey]*Route),
		dynamic: make(map[string][]*Route),
		routes:  make([]*Route, len(b.routes)),
	}
	copy(t.routes, b.routes)

	for _, rt := range t.routes {
		if rt.pattern.static() {
			t.static[routeKey{method: rt.Method, pattern: rt.pattern.key}] = rt
			continue
		}
		t.dynamic[rt.Method] = append(t.dynamic[rt.Method], rt)
	}

	return t
}

// Table is an immutable route table. It is safe for concurrent use.
type Table struct {
	static map[routeKey]*Route

	// dynamic holds parameterized routes per method in registration order.
	dynamic map[string][]*Route

	routes []*Route
}

// Match resolves method and the escaped request path (as returned by
// [url.URL.EscapedPath]) to a route. Segments are split before unescaping,
// so "/users/a%2Fb" binds "a/b" to a single parameter. The boolean is false
// when no route matches, which includes a path registered only under other
// methods.
func (t *Table) Match(method, path string) (*Route, Params, bool) {
	segments, ok := splitRequestPath(path)
	if !ok {
		return nil, nil, false
	}

	// a fully literal match can never be beaten; a decoded slash can only
	// belong to a parameter
	if !slices.ContainsFunc(segments, func(seg string) bool { return strings.Contains(seg, "/") }) {
		if rt, ok := t.static[routeKey{method: method, pattern: "/" + strings.Join(segments, "/")}]; ok {
			return rt, nil, true
		}
	}

	var (
		best       *Route
		bestParams Params
	)

	candidates := t.dynamic[method]
	for i := len(candidates) - 1; i >= 0; i-- {
		rt := candidates[i]
		params, ok := rt.pattern.match(segments)
		if !ok {
			continue
		}
		if best == nil || rt.pattern.moreSpecific(best.pattern) {
			best, bestParams = rt, params
		}
	}

	if best == nil {
		return nil, nil, false
	}

	return best, bestParams, true
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// Routes describes the registered routes in registration order.
func (t *Table) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(t.routes))
	for _, rt := range t.routes {
		infos = append(infos, RouteInfo{
			Method:       rt.Method,
			Pattern:      rt.Pattern,
			AuthRequired: rt.AuthRequired,
		})
	}
	return infos
}
