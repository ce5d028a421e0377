// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/utils"
	"github.com/MKhiriev/validations-api/models"
)

type httpProbeAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPProbeAdapter constructs an HTTP implementation of [ProbeAdapter].
// address may omit the scheme ("http" is assumed) and the host (":8080"
// targets the loopback interface), so a server listen address can be used
// as is.
func NewHTTPProbeAdapter(address string, timeout time.Duration, logger *logger.Logger) (ProbeAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w", err)
	}

	return &httpProbeAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if strings.HasPrefix(raw, ":") {
		raw = "127.0.0.1" + raw
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpProbeAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if body := string(resp.Body()); body != "pong" {
		return fmt.Errorf("%w: ping answered %q", ErrUnexpectedResponse, body)
	}
	return nil
}

func (h *httpProbeAdapter) Liveness(ctx context.Context) (models.Liveness, error) {
	var report models.Liveness
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		Get("/health/live")
	if err != nil {
		return models.Liveness{}, fmt.Errorf("liveness request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Liveness{}, err
	}

	return report, nil
}

func (h *httpProbeAdapter) Readiness(ctx context.Context) (models.Readiness, error) {
	var report models.Readiness
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		SetError(&report).
		Get("/health/ready")
	if err != nil {
		return models.Readiness{}, fmt.Errorf("readiness request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("readiness probe failed")
		return report, err
	}

	return report, nil
}

func (h *httpProbeAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
