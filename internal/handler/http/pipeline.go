package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

// Interceptor is one stage of the request pipeline. It either handles the
// request itself (short-circuit) or passes it on to next.
type Interceptor interface {
	Name() string
	Intercept(next http.Handler) http.Handler
}

type interceptorFunc struct {
	name string
	fn   func(http.Handler) http.Handler
}

// NewInterceptor adapts a middleware function to [Interceptor].
func NewInterceptor(name string, fn func(http.Handler) http.Handler) Interceptor {
	return interceptorFunc{name: name, fn: fn}
}

func (i interceptorFunc) Name() string {
	return i.name
}

func (i interceptorFunc) Intercept(next http.Handler) http.Handler {
	return i.fn(next)
}

// Pipeline is an ordered, immutable list of interceptors.
type Pipeline struct {
	interceptors []Interceptor
}

// NewPipeline fixes the interceptor order. Nil entries are skipped.
func NewPipeline(interceptors ...Interceptor) *Pipeline {
	p := &Pipeline{interceptors: make([]Interceptor, 0, len(interceptors))}
	for _, i := range interceptors {
		if i != nil {
			p.interceptors = append(p.interceptors, i)
		}
	}
	return p
}

// Names lists the interceptors in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.interceptors))
	for i, interceptor := range p.interceptors {
		names[i] = interceptor.Name()
	}
	return names
}

// Then chains the interceptors in order in front of terminal. Before each
// stage the request context is checked: once the client is gone the
// remaining stages of that request are skipped.
func (p *Pipeline) Then(terminal http.Handler) http.Handler {
	h := abortOnDone("terminal", terminal)
	for i := len(p.interceptors) - 1; i >= 0; i-- {
		interceptor := p.interceptors[i]
		h = abortOnDone(interceptor.Name(), interceptor.Intercept(h))
	}
	return h
}

func abortOnDone(stage string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("stage", stage).Msg("request aborted")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// pipeline assembles the server's interceptors in their fixed order.
func (h *Handler) pipeline() *Pipeline {
	var accessLog Interceptor
	if h.development {
		accessLog = NewInterceptor("access_log", h.withLogging)
	}

	var timeout Interceptor
	if h.requestTimeout > 0 {
		timeout = NewInterceptor("timeout", middleware.Timeout(h.requestTimeout))
	}

	return NewPipeline(
		NewInterceptor("recoverer", middleware.Recoverer),
		NewInterceptor("trace_id", h.withTraceID),
		NewInterceptor("metrics", h.withMetrics),
		accessLog,
		timeout,
		NewInterceptor("gzip", withGZip),

		newBodyDecoder(defaultBodyLimit),
		newStaticAssets(h.publicDir, h.logger),
		newCookieParser(),
		newSessionResolver(h.sessions),
		newAuthenticator(h.services.AuthService),
		newLocalsProjector(),
	)
}
