// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func pong() Handler {
	return HandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte("pong"))
		return err
	})
}

// globalHeader sets a header on every response, matched or not.
func globalHeader(w http.ResponseWriter, r *http.Request, next http.Handler) {
	w.Header().Set("X-Global", "on")
	next.ServeHTTP(w, r)
}

func newTestDispatcher(t *testing.T, register func(b *TableBuilder), mws ...Middleware) (*Dispatcher, *bytes.Buffer) {
	t.Helper()

	b := NewTableBuilder()
	register(b)

	var logs bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logs)}

	return NewDispatcher(b.Build(), NewPipeline(mws...), log), &logs
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

// ---- Tests ----

func TestDispatcher_Ping(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", pong()))
	}, MiddlewareFunc(globalHeader))

	tests := []struct {
		name    string
		body    string
		headers map[string]string
	}{
		{name: "plain"},
		{name: "with body", body: `{"ignored":true}`},
		{name: "with headers", headers: map[string]string{"Accept": "application/json", "X-Anything": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", strings.NewReader(tt.body))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			d.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "pong", rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "on", rec.Header().Get("X-Global"))
		})
	}
}

func TestDispatcher_NotFoundCrossesPipeline(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", pong()))
	}, MiddlewareFunc(globalHeader))

	for _, target := range []string{"/nope", "/ping/extra", "/"} {
		rec := httptest.NewRecorder()
		d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "on", rec.Header().Get("X-Global"), target)
		assert.Equal(t, msgNotFound, decodeError(t, rec.Body).Message)
	}

	// a method that is not registered for an existing path is a 404 as well
	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDispatcher_HandlerErrorIsHidden(t *testing.T) {
	secret := errors.New("pq: password authentication failed for user \"admin\"")

	d, logs := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/boom", HandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			_, _ = w.Write([]byte("partial output"))
			return secret
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "partial output")
	assert.Equal(t, msgInternalError, decodeError(t, rec.Body).Message)

	// full detail stays server side
	assert.Contains(t, logs.String(), "password authentication failed")
	assert.Contains(t, logs.String(), "GET /boom")
}

func TestDispatcher_HandlerPanicIsHidden(t *testing.T) {
	d, logs := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/panic", HandlerFunc(func(http.ResponseWriter, *http.Request) error {
			panic("nil map write in secret module")
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret module")
	assert.Contains(t, logs.String(), "secret module")
	assert.Contains(t, logs.String(), "stack")
}

func TestDispatcher_AbortHandlerPanicPropagates(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/abort", HandlerFunc(func(http.ResponseWriter, *http.Request) error {
			panic(http.ErrAbortHandler)
		})))
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}

func TestDispatcher_StatusErrorKeepsPublicMessage(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodPost, "/items", HandlerFunc(func(http.ResponseWriter, *http.Request) error {
			return WrapStatusError(http.StatusBadRequest, "name is required", errors.New("decoder: field name missing"))
		})))
		require.NoError(t, b.Register(http.MethodGet, "/upstream", HandlerFunc(func(http.ResponseWriter, *http.Request) error {
			return NewStatusError(http.StatusBadGateway, "upstream unavailable")
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name is required", decodeError(t, rec.Body).Message)

	// server-side statuses are never echoed
	rec = httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upstream", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalError, decodeError(t, rec.Body).Message)
}

func TestDispatcher_ParamsBoundToContext(t *testing.T) {
	var (
		gotID    string
		gotRoute string
	)

	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/users/:id", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			gotID = Param(r, "id")
			rt, ok := RouteFromContext(r.Context())
			require.True(t, ok)
			gotRoute = rt.Pattern
			w.WriteHeader(http.StatusNoContent)
			return nil
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc", gotID)
	assert.Equal(t, "/users/:id", gotRoute)
}

func TestDispatcher_MiddlewareSeesMatchedRoute(t *testing.T) {
	var seen []string

	inspect := MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		if rt, ok := RouteFromContext(r.Context()); ok {
			seen = append(seen, rt.Pattern)
		} else {
			seen = append(seen, "none")
		}
		next.ServeHTTP(w, r)
	})

	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", pong()))
	}, inspect)

	d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, []string{"/ping", "none"}, seen)
}

func TestDispatcher_ShortCircuitSkipsHandler(t *testing.T) {
	called := false

	unauthorized := MiddlewareFunc(func(w http.ResponseWriter, _ *http.Request, _ http.Handler) {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
	})

	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/secret", HandlerFunc(func(http.ResponseWriter, *http.Request) error {
			called = true
			return nil
		})))
	}, unauthorized)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDispatcher_MiddlewareOrderAroundHandler(t *testing.T) {
	var order []string

	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", HandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			order = append(order, "handler")
			return nil
		})))
	}, recordingMiddleware("A", &order), recordingMiddleware("B", &order))

	d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, []string{"A:pre", "B:pre", "handler", "B:post", "A:post"}, order)
}

func TestDispatcher_CancelledRequestWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	d, logs := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/slow", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			_, _ = w.Write([]byte("half"))
			cancel()
			<-r.Context().Done()
			return r.Context().Err()
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))

	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, logs.String(), "request cancelled")
}

func TestDispatcher_DeadlineAnswersGatewayTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	d, logs := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/slow", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			_, _ = w.Write([]byte("half"))
			<-r.Context().Done()
			return r.Context().Err()
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, msgTimeout, decodeError(t, rec.Body).Message)
	assert.NotContains(t, rec.Body.String(), "half")
	assert.Contains(t, logs.String(), "request cancelled")
}

func TestDispatcher_EscapedSlashInParameter(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/users/:id", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			_, err := w.Write([]byte(Param(r, "id")))
			return err
		})))
	})

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/a%2Fb", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a/b", rec.Body.String())
}

func TestDispatcher_MiddlewarePanicBecomes500(t *testing.T) {
	broken := MiddlewareFunc(func(http.ResponseWriter, *http.Request, http.Handler) {
		panic("middleware bug")
	})

	d, logs := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", pong()))
	}, broken)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "middleware bug")
	assert.Contains(t, logs.String(), "middleware bug")
	assert.Contains(t, logs.String(), "GET /ping")
}

func TestDispatcher_HandlerHeadersOverrideMiddleware(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/ping", HandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			w.Header().Set("X-Global", "handler")
			return nil
		})))
	}, MiddlewareFunc(globalHeader))

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "handler", rec.Header().Get("X-Global"))
}

func TestDispatcher_ConcurrentRequests(t *testing.T) {
	d, _ := newTestDispatcher(t, func(b *TableBuilder) {
		require.NoError(t, b.Register(http.MethodGet, "/echo/:value", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			_, err := w.Write([]byte(Param(r, "value")))
			return err
		})))
	}, MiddlewareFunc(globalHeader))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			value := strings.Repeat("x", n+1)
			rec := httptest.NewRecorder()
			d.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo/"+value, nil))
			assert.Equal(t, value, rec.Body.String())
		}(i)
	}
	wg.Wait()
}

func TestNewDispatcher_SnapshotsPipeline(t *testing.T) {
	var order []string
	p := NewPipeline(recordingMiddleware("A", &order))

	d := NewDispatcher(NewTableBuilder().Build(), p, nil)
	p.Use(recordingMiddleware("late", &order))

	d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"A:pre", "A:post"}, order)
}
