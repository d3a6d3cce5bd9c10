package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/httputil"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

func TestRecovery_PanicReturnsErrorEnvelope(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter("test-svc", "info", &buf)

	handler := Recovery(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	// The panic value goes to the log, never to the client.
	assert.NotContains(t, rr.Body.String(), "kaboom")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter("test-svc", "info", &buf)

	handler := Recovery(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Zero(t, buf.Len())
}
