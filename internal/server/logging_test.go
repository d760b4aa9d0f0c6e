package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs installs a debug-level text logger writing to the returned buffer
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, "TestAgent")
	assert.Contains(t, logOutput, RedactedValue)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(HeaderRequestID)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/users/1", nil))

	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, rec.Header().Get(HeaderRequestID), seen)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, path := range QuietPaths {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	assert.Empty(t, buf.String())
}
