package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go-vehicle-api/internal/model"
)

type HomeHandler struct {
	info  model.HomeInfo
	check func(ctx context.Context) error
}

// NewHomeHandler serves the info and health routes. check probes the
// backing store and may be nil.
func NewHomeHandler(info model.HomeInfo, check func(ctx context.Context) error) *HomeHandler {
	return &HomeHandler{info: info, check: check}
}

func (h *HomeHandler) Info(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.info, nil)
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.check(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
