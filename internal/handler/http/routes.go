package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

// Route binds a method and path pattern to its terminal handler. Guards run
// in order directly before the handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	Guards  []func(http.Handler) http.Handler
}

func (r Route) key() string {
	return r.Method + " " + r.Pattern
}

// RouteTable is the immutable set of terminal routes.
type RouteTable struct {
	routes []Route
}

// NewRouteTable keeps the first registration of every method and pattern
// pair; later duplicates are dropped with a warning.
func NewRouteTable(log *logger.Logger, routes ...Route) *RouteTable {
	seen := make(map[string]struct{}, len(routes))
	table := &RouteTable{routes: make([]Route, 0, len(routes))}

	for _, route := range routes {
		if _, ok := seen[route.key()]; ok {
			log.Warn().Str("route", route.key()).Msg("duplicate route ignored")
			continue
		}
		seen[route.key()] = struct{}{}
		table.routes = append(table.routes, route)
	}

	return table
}

// Routes returns a copy of the table in registration order.
func (t *RouteTable) Routes() []Route {
	routes := make([]Route, len(t.routes))
	copy(routes, t.routes)
	return routes
}

// Mount registers every route on router.
func (t *RouteTable) Mount(router chi.Router) {
	for _, route := range t.routes {
		var h http.Handler = route.Handler
		for i := len(route.Guards) - 1; i >= 0; i-- {
			h = route.Guards[i](h)
		}
		router.Method(route.Method, route.Pattern, h)
	}
}

// generalRoutes registers pages and the account flow.
func (h *Handler) generalRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: h.splash},
		{Method: http.MethodGet, Pattern: "/home/", Handler: h.home, Guards: []func(http.Handler) http.Handler{h.authenticated}},

		{Method: http.MethodPost, Pattern: "/users/register", Handler: h.register},
		{Method: http.MethodPost, Pattern: "/users/login", Handler: h.login},
		{Method: http.MethodGet, Pattern: "/users/logout", Handler: h.logout},
	}
}

// apiRoutes registers the JSON API.
func (h *Handler) apiRoutes() []Route {
	apiGuard := []func(http.Handler) http.Handler{h.apiAuthenticated}

	return []Route{
		{Method: http.MethodGet, Pattern: "/api/session", Handler: h.getSession},
		{Method: http.MethodGet, Pattern: "/api/user", Handler: h.getUser, Guards: apiGuard},
		{Method: http.MethodPost, Pattern: "/api/token", Handler: h.createToken, Guards: apiGuard},
		{Method: http.MethodGet, Pattern: "/api/version", Handler: h.getServerVersion},
		{Method: http.MethodGet, Pattern: "/api/health", Handler: h.getHealth},
		{Method: http.MethodGet, Pattern: "/metrics", Handler: h.metrics.handler().ServeHTTP},
	}
}
