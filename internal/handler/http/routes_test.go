package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestRouteTable_FirstRegistrationWins(t *testing.T) {
	table := NewRouteTable(logger.Nop(),
		Route{Method: http.MethodGet, Pattern: "/", Handler: writeBody("first")},
		Route{Method: http.MethodPost, Pattern: "/", Handler: writeBody("post")},
		Route{Method: http.MethodGet, Pattern: "/", Handler: writeBody("second")},
	)

	routes := table.Routes()
	require.Len(t, routes, 2)

	router := chi.NewRouter()
	table.Mount(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "first", rr.Body.String())
}

func TestRouteTable_RoutesReturnsCopy(t *testing.T) {
	table := NewRouteTable(logger.Nop(), Route{Method: http.MethodGet, Pattern: "/", Handler: writeBody("ok")})

	routes := table.Routes()
	routes[0].Pattern = "/changed"

	assert.Equal(t, "/", table.Routes()[0].Pattern)
}

func TestRouteTable_GuardsRunInOrder(t *testing.T) {
	var trace []string
	guard := func(name string, pass bool) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name)
				if !pass {
					http.Redirect(w, r, "/", http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
			})
		}
	}

	table := NewRouteTable(logger.Nop(),
		Route{
			Method:  http.MethodGet,
			Pattern: "/open",
			Handler: writeBody("open"),
			Guards:  []func(http.Handler) http.Handler{guard("a", true), guard("b", true)},
		},
		Route{
			Method:  http.MethodGet,
			Pattern: "/closed",
			Handler: writeBody("closed"),
			Guards:  []func(http.Handler) http.Handler{guard("c", false), guard("d", true)},
		},
	)
	router := chi.NewRouter()
	table.Mount(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, "open", rr.Body.String())
	assert.Equal(t, []string{"a", "b"}, trace)

	trace = nil
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/closed", nil))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, []string{"c"}, trace)
}

func TestHandler_RouteTableHasNoDuplicates(t *testing.T) {
	h := &Handler{metrics: newMetrics(), logger: logger.Nop()}
	all := append(h.generalRoutes(), h.apiRoutes()...)

	table := NewRouteTable(logger.Nop(), all...)

	assert.Len(t, table.Routes(), len(all))
}
