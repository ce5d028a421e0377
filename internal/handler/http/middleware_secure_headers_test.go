// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithSecureHeaders(t *testing.T) {
	h := &Handler{}
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	h.withSecureHeaders(rec, httptest.NewRequest(http.MethodGet, "/", nil), next)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	for name, value := range secureHeaders {
		assert.Equal(t, value, rec.Header().Get(name), name)
	}
}

func TestWithSecureHeaders_OnHandlerFailure(t *testing.T) {
	d, deps := newTestDispatcher(t, nil)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("boom")
	})

	rec := serve(d, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
