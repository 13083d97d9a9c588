package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
)

type cookieParser struct{}

func newCookieParser() *cookieParser {
	return &cookieParser{}
}

func (c *cookieParser) Name() string {
	return "cookie_parser"
}

// Intercept copies the request cookies into the request context.
// When a name repeats, the first occurrence wins.
func (c *cookieParser) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rc, ok := utils.GetRequestContext(r.Context()); ok {
			for _, cookie := range r.Cookies() {
				if _, seen := rc.Cookies[cookie.Name]; !seen {
					rc.Cookies[cookie.Name] = cookie.Value
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
