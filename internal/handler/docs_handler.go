package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

type DocsHandler struct {
	spec []byte
	ui   http.Handler
}

func NewDocsHandler(spec []byte) *DocsHandler {
	return &DocsHandler{
		spec: spec,
		ui: httpSwagger.Handler(
			httpSwagger.URL("/openapi.yaml"),
			httpSwagger.DeepLinking(true),
			httpSwagger.PersistAuthorization(true),
		),
	}
}

func (h *DocsHandler) OpenAPI(w http.ResponseWriter, _ *http.Request) {
	if h == nil || len(h.spec) == 0 {
		http.Error(w, "openapi spec not configured", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.spec)
}

func (h *DocsHandler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	h.ui.ServeHTTP(w, r)
}
