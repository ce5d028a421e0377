// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/url"
	"strings"
)

const paramPrefix = ':'

type segment struct {
	value string
	param bool
}

// pattern is a parsed route pattern.
type pattern struct {
	// canonical keeps parameter names: "/users/:id".
	canonical string

	// key erases parameter names: "/users/:". Two patterns with the same key
	// match exactly the same set of paths.
	key string

	segments []segment
	literals int
}

func parsePattern(raw string) (pattern, error) {
	if strings.TrimSpace(raw) == "" {
		return pattern{}, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	parts := splitPath(raw)
	p := pattern{segments: make([]segment, 0, len(parts))}
	names := make(map[string]struct{}, len(parts))

	canonical := make([]string, 0, len(parts))
	key := make([]string, 0, len(parts))

	for _, part := range parts {
		if part[0] != paramPrefix {
			p.segments = append(p.segments, segment{value: part})
			p.literals++
			canonical = append(canonical, part)
			key = append(key, part)
			continue
		}

		name := part[1:]
		if name == "" {
			return pattern{}, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, raw)
		}
		if _, seen := names[name]; seen {
			return pattern{}, fmt.Errorf("%w: parameter %q repeated in %q", ErrInvalidPattern, name, raw)
		}
		names[name] = struct{}{}

		p.segments = append(p.segments, segment{value: name, param: true})
		canonical = append(canonical, part)
		key = append(key, string(paramPrefix))
	}

	p.canonical = "/" + strings.Join(canonical, "/")
	p.key = "/" + strings.Join(key, "/")

	return p, nil
}

func (p pattern) static() bool {
	return p.literals == len(p.segments)
}

// match compares p with already split path segments. Params is nil when the
// pattern has no parameters.
func (p pattern) match(path []string) (Params, bool) {
	if len(path) != len(p.segments) {
		return nil, false
	}

	var params Params
	for i, seg := range p.segments {
		if !seg.param {
			if seg.value != path[i] {
				return nil, false
			}
			continue
		}

		if params == nil {
			params = make(Params, len(p.segments)-p.literals)
		}
		params[seg.value] = path[i]
	}

	return params, true
}

// moreSpecific reports whether p beats other for a path both of them match.
// The first position where one has a literal and the other a parameter
// decides for the literal.
func (p pattern) moreSpecific(other pattern) bool {
	for i := range p.segments {
		if i >= len(other.segments) {
			return false
		}
		a, b := p.segments[i].param, other.segments[i].param
		if a == b {
			continue
		}
		return !a
	}
	return false
}

// splitPath splits a path into its non-empty segments, so repeated and
// trailing slashes are ignored.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	n := 1
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			n++
		}
	}

	segments := make([]string, 0, n)
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}

	return segments
}

// splitRequestPath splits an escaped request path and unescapes each
// segment, so an encoded slash stays inside its segment. ok is false for a
// malformed escape.
func splitRequestPath(escaped string) ([]string, bool) {
	segments := splitPath(escaped)
	for i, seg := range segments {
		if !strings.Contains(seg, "%") {
			continue
		}
		unescaped, err := url.PathUnescape(seg)
		if err != nil {
			return nil, false
		}
		segments[i] = unescaped
	}
	return segments, true
}
