package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type connState bool

func (c connState) IsClosed() bool { return bool(c) }

func serveHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthFileStoreOnly(t *testing.T) {
	code, body := serveHealth(t, NewHealthHandler("file", nil, nil, false))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "file", body.Dependencies["store"])
	assert.Equal(t, "not configured", body.Dependencies["database"])
	assert.Equal(t, "fallback only", body.Dependencies["gemini"])
}

func TestHealthDegradedWhenDatabaseDown(t *testing.T) {
	db := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	code, body := serveHealth(t, NewHealthHandler("postgres", db, connState(false), true))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Dependencies["rabbitmq"])
	assert.Contains(t, body.Dependencies["database"], "connection refused")
}

func TestHealthDegradedWhenBrokerClosed(t *testing.T) {
	db := pingFunc(func(context.Context) error { return nil })
	code, body := serveHealth(t, NewHealthHandler("postgres", db, connState(true), true))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy: connection closed", body.Dependencies["rabbitmq"])
}
