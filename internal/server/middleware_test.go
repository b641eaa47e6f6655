package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestAPIKeyAuthResponses verifies the auth middleware distinguishes a
// missing key from a wrong one and returns the API's JSON error shape for
// both.
func TestAPIKeyAuthResponses(t *testing.T) {
	handler := APIKeyAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name       string
		key        string
		wantStatus int
		wantError  string
	}{
		{"missing key", "", http.StatusUnauthorized, "missing API key"},
		{"wrong key", "nope", http.StatusForbidden, "invalid API key"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/log", nil)
			if tc.key != "" {
				req.Header.Set(apiKeyHeader, tc.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v\n%s", err, rec.Body.String())
			}
			if body["error"] != tc.wantError || body["kind"] != "auth" {
				t.Errorf("body = %v", body)
			}
		})
	}
}

// TestAPIKeyAuthPassesThrough verifies a correct key reaches the handler.
func TestAPIKeyAuthPassesThrough(t *testing.T) {
	called := false
	handler := APIKeyAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/log", nil)
	req.Header.Set(apiKeyHeader, "secret")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("handler not reached with valid key")
	}
}

// TestRequestLoggingFields verifies the per-request log line carries the
// handler's status and the response size.
func TestRequestLoggingFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("0123456789"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/athletes", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	line := buf.String()
	for _, want := range []string{"status=201", "bytes=10", "path=/api/v1/athletes"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}
}

// TestCORSHeaders verifies responses advertise only the verbs and headers
// this API uses.
func TestCORSHeaders(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, apiKeyHeader) {
		t.Errorf("allowed headers = %q, want %s included", got, apiKeyHeader)
	}
}

// TestCORSPreflight verifies OPTIONS requests get 204 without reaching the
// handler.
func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called for OPTIONS")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
