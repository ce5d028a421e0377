// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/internal/mock"
	"github.com/MKhiriev/validations-api/internal/router"
	"github.com/MKhiriev/validations-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testDeps exposes the mocked services behind a test Handler.
type testDeps struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
}

func productionConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Environment: config.EnvironmentProduction, Version: "1.0.0"},
		Server: config.Server{HTTPAddress: ":8080", HTTPSPort: 443},
	}
}

func developmentConfig() *config.StructuredConfig {
	cfg := productionConfig()
	cfg.App.Environment = config.EnvironmentDevelopment
	return cfg
}

// newTestHandler builds a Handler over gomock services. Any service call
// without a matching EXPECT fails the test.
func newTestHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}
	services := &service.Services{
		AuthService:    deps.auth,
		AppInfoService: deps.appInfo,
		HealthService:  deps.health,
	}
	if cfg == nil {
		cfg = productionConfig()
	}

	return NewHandler(services, cfg, logger.Nop()), deps
}

func newTestDispatcher(t *testing.T, cfg *config.StructuredConfig) (*router.Dispatcher, testDeps) {
	t.Helper()
	h, deps := newTestHandler(t, cfg)

	d, err := h.Init()
	require.NoError(t, err)

	return d, deps
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(b)
}
