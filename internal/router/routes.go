package router

import (
	"log/slog"
	"net/http"

	"go-vehicle-api/internal/handler"
	"go-vehicle-api/internal/middleware"
	"go-vehicle-api/internal/model"
)

// Route binds a method and path to a handler and the access rule the
// shared gate enforces for it.
type Route struct {
	Method      string
	Path        string
	Requirement middleware.Requirement
	Handler     http.HandlerFunc
}

type Handlers struct {
	Home    *handler.HomeHandler
	Docs    *handler.DocsHandler
	Auth    *handler.AuthHandler
	Account *handler.AccountHandler
	Vehicle *handler.VehicleHandler
}

var (
	adminOnly      = middleware.AnyRole(model.RoleAdmin)
	adminOrEditor  = middleware.AnyRole(model.RoleAdmin, model.RoleEditor)
	anyAccount     = middleware.Authenticated()
	publicEndpoint = middleware.Public()
)

// apiRoutes is the access table for everything under /api/v1.
func apiRoutes(h Handlers) []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/auth/login", Requirement: publicEndpoint, Handler: h.Auth.Login},
		{Method: http.MethodGet, Path: "/auth/me", Requirement: anyAccount, Handler: h.Auth.Me},

		{Method: http.MethodGet, Path: "/accounts", Requirement: adminOnly, Handler: h.Account.List},
		{Method: http.MethodGet, Path: "/accounts/{id}", Requirement: adminOnly, Handler: h.Account.Get},
		{Method: http.MethodPost, Path: "/accounts", Requirement: adminOnly, Handler: h.Account.Create},
		{Method: http.MethodPut, Path: "/accounts/{id}", Requirement: adminOnly, Handler: h.Account.Update},
		{Method: http.MethodDelete, Path: "/accounts/{id}", Requirement: adminOnly, Handler: h.Account.Delete},

		{Method: http.MethodGet, Path: "/vehicles", Requirement: anyAccount, Handler: h.Vehicle.List},
		{Method: http.MethodGet, Path: "/vehicles/{id}", Requirement: adminOrEditor, Handler: h.Vehicle.Get},
		{Method: http.MethodPost, Path: "/vehicles", Requirement: adminOrEditor, Handler: h.Vehicle.Create},
		{Method: http.MethodPut, Path: "/vehicles/{id}", Requirement: adminOnly, Handler: h.Vehicle.Update},
		{Method: http.MethodDelete, Path: "/vehicles/{id}", Requirement: adminOnly, Handler: h.Vehicle.Delete},
	}
}

// rootRoutes are served outside the API prefix and are always public.
func rootRoutes(h Handlers) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Requirement: publicEndpoint, Handler: h.Home.Info},
		{Method: http.MethodGet, Path: "/health", Requirement: publicEndpoint, Handler: h.Home.Health},
		{Method: http.MethodGet, Path: "/openapi.yaml", Requirement: publicEndpoint, Handler: h.Docs.OpenAPI},
		{Method: http.MethodGet, Path: "/swagger/*", Requirement: publicEndpoint, Handler: h.Docs.SwaggerUI},
	}
}

// RouteInfo is the audit view of one table entry.
type RouteInfo struct {
	Method      string
	Path        string
	Requirement string
}

// Routes lists every route with its access rule, API paths fully prefixed.
func Routes() []RouteInfo {
	var placeholders Handlers
	infos := make([]RouteInfo, 0)
	for _, route := range rootRoutes(placeholders) {
		infos = append(infos, RouteInfo{Method: route.Method, Path: route.Path, Requirement: route.Requirement.String()})
	}
	for _, route := range apiRoutes(placeholders) {
		infos = append(infos, RouteInfo{Method: route.Method, Path: apiPrefix + route.Path, Requirement: route.Requirement.String()})
	}
	return infos
}

func logRoutes() {
	for _, route := range Routes() {
		slog.Info("route registered", "method", route.Method, "path", route.Path, "access", route.Requirement)
	}
	slog.Info("routes registered", "count", len(Routes()))
}
