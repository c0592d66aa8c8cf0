package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"go-vehicle-api/internal/model"
)

const defaultRequestTimeout = 30 * time.Second

// Timeout bounds handler time. The 503 body reuses the API error envelope.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	body, _ := json.Marshal(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "REQUEST_TIMEOUT",
			Message: "request timed out",
		},
	})

	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limited.ServeHTTP(&timeoutResponseWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutResponseWriter labels the 503 body written by http.TimeoutHandler,
// which carries no Content-Type of its own.
type timeoutResponseWriter struct {
	http.ResponseWriter
}

func (w *timeoutResponseWriter) WriteHeader(status int) {
	if status == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *timeoutResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
