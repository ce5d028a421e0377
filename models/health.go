// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Health statuses reported by the liveness and readiness endpoints.
const (
	StatusAlive    = "alive"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	StatusUp       = "up"
	StatusDown     = "down"
)

// Liveness is the body of GET /health/live.
type Liveness struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// Readiness is the body of GET /health/ready.
type Readiness struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// Ready reports whether every dependency is up and the server accepts
// traffic.
func (r Readiness) Ready() bool {
	return r.Status == StatusReady
}

// CheckResult is the outcome of a single readiness check. Error carries a
// short, client-safe description and is empty for healthy checks.
type CheckResult struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}
