package server

import (
	"log/slog"
	"net/http"
	"time"
)

// apiKeyHeader carries the shared key both athletes' devices embed in their
// logging shortcuts. Only write routes check it; reads stay open because the
// dashboards are reachable over the tailnet only.
const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards the write routes. A missing key and a wrong key are
// reported separately so a misconfigured shortcut can tell the two apart.
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch key := r.Header.Get(apiKeyHeader); {
			case key == "":
				writeJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "missing API key", "kind": "auth",
				})
			case key != apiKey:
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error": "invalid API key", "kind": "auth",
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequestLogging emits one line per request: method, path, status, response
// size and elapsed time.
func RequestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"elapsed", time.Since(start).Round(time.Millisecond).String(),
			)
		})
	}
}

// CORS lets the phone browsers call the API from wherever the frontend is
// served. Only the verbs and headers this API actually uses are allowed.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+apiKeyHeader)
		h.Set("Access-Control-Max-Age", "300")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// responseRecorder captures the status code and body size for the request
// log.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}
