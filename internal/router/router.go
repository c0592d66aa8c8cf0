package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"go-vehicle-api/internal/config"
	"go-vehicle-api/internal/middleware"
)

const apiPrefix = "/api/v1"

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	if cfg.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeRouteError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeRouteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	for _, route := range rootRoutes(h) {
		r.With(authMiddleware.Gate(route.Requirement)).Method(route.Method, route.Path, route.Handler)
	}

	r.Route(apiPrefix, func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		for _, route := range apiRoutes(h) {
			api.With(authMiddleware.Gate(route.Requirement)).Method(route.Method, route.Path, route.Handler)
		}
	})

	logRoutes()
	return r
}
