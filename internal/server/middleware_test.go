package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func routedServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, nil, apiKey, log)
}

// TestAPIKeyAuthMissing verifies that posting a log without an API key
// is rejected before the handler runs.
func TestAPIKeyAuthMissing(t *testing.T) {
	s := routedServer(t, "secret")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing API key") {
		t.Errorf("body = %q, want missing API key error", rec.Body.String())
	}
}

// TestAPIKeyAuthWrongKey verifies that a wrong key is a 403, distinct
// from the missing-key 401.
func TestAPIKeyAuthWrongKey(t *testing.T) {
	s := routedServer(t, "secret")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs", strings.NewReader("{}"))
	req.Header.Set("X-API-Key", "not-the-key")
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid API key") {
		t.Errorf("body = %q, want invalid API key error", rec.Body.String())
	}
}

// TestAPIKeyAuthPassThrough verifies the correct key reaches the next
// handler untouched.
func TestAPIKeyAuthPassThrough(t *testing.T) {
	called := false
	h := APIKeyAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler was not called with a valid key")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

// TestCORSPreflight verifies an OPTIONS request short-circuits with the
// headers a browser needs to call the render endpoint cross-origin.
func TestCORSPreflight(t *testing.T) {
	s := routedServer(t, "secret")
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/render", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-API-Key") {
		t.Errorf("Allow-Headers = %q, want X-API-Key listed", got)
	}
}

// TestRequestLogging verifies the middleware records the downstream
// status and response size, not the defaults.
func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := RequestLogging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such log"))
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs/nope", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "status=404") {
		t.Errorf("log = %q, want status=404", out)
	}
	if !strings.Contains(out, "bytes=11") {
		t.Errorf("log = %q, want bytes=11", out)
	}
}
