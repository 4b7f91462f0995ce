package httphandler_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/recipecatalog/internal/adapter/driving/http"
)

func TestApplyMiddleware_AssignsRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httphandler.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	rec := httptest.NewRecorder()
	httphandler.ApplyMiddleware(next, logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	id := rec.Header().Get(httphandler.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
	assert.Contains(t, logs.String(), "status=418")
	assert.Contains(t, logs.String(), "request_id="+id)
}

func TestApplyMiddleware_KeepsIncomingRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = httphandler.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httphandler.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	httphandler.ApplyMiddleware(next, testLogger).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(httphandler.RequestIDHeader))
}

func TestApplyMiddleware_RecoversFromPanic(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	rec := httptest.NewRecorder()
	httphandler.ApplyMiddleware(next, logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipe/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "panic recovered")
	assert.Contains(t, logs.String(), "status=500")
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, httphandler.RequestIDFromContext(req.Context()))
}
