package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
)

// recordingInterceptor appends its name to trace before calling next.
func recordingInterceptor(name string, trace *[]string) Interceptor {
	return NewInterceptor(name, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name)
			next.ServeHTTP(w, r)
		})
	})
}

func TestPipeline_RunsStagesInOrder(t *testing.T) {
	var trace []string
	p := NewPipeline(
		recordingInterceptor("first", &trace),
		nil,
		recordingInterceptor("second", &trace),
		recordingInterceptor("third", &trace),
	)

	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "terminal")
	})
	p.Then(terminal).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "third"}, p.Names())
	assert.Equal(t, []string{"first", "second", "third", "terminal"}, trace)
}

func TestPipeline_ShortCircuitSkipsLaterStages(t *testing.T) {
	var trace []string
	stop := NewInterceptor("stop", func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			trace = append(trace, "stop")
			w.WriteHeader(http.StatusNoContent)
		})
	})

	p := NewPipeline(recordingInterceptor("first", &trace), stop, recordingInterceptor("never", &trace))
	rr := httptest.NewRecorder()
	p.Then(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"first", "stop"}, trace)
}

func TestPipeline_AbortsWhenClientIsGone(t *testing.T) {
	var trace []string
	cancelling := NewInterceptor("cancel", func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			trace = append(trace, "cancel")
			ctx, cancel := context.WithCancel(r.Context())
			cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	p := NewPipeline(recordingInterceptor("first", &trace), cancelling, recordingInterceptor("after", &trace))
	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "terminal")
	})
	p.Then(terminal).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "cancel"}, trace)
}

func TestHandler_PipelineOrder(t *testing.T) {
	h := &Handler{
		metrics:   newMetrics(),
		publicDir: t.TempDir(),
		services:  &service.Services{},
		logger:    logger.Nop(),
	}

	tests := []struct {
		name        string
		development bool
		want        []string
	}{
		{
			name: "production",
			want: []string{
				"recoverer", "trace_id", "metrics", "gzip",
				"body_decoder", "static_assets", "cookie_parser",
				"session_resolver", "authenticator", "locals_projector",
			},
		},
		{
			name:        "development adds the access log",
			development: true,
			want: []string{
				"recoverer", "trace_id", "metrics", "access_log", "gzip",
				"body_decoder", "static_assets", "cookie_parser",
				"session_resolver", "authenticator", "locals_projector",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.development = tt.development
			assert.Equal(t, tt.want, h.pipeline().Names())
		})
	}
}
