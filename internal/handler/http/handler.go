package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/session"
	"github.com/MKhiriev/go-web-bootstrap/internal/validators"
)

type Handler struct {
	services  *service.Services
	sessions  *session.Manager
	validator validators.Validator
	metrics   *metrics

	publicDir      string
	development    bool
	requestTimeout time.Duration

	router *chi.Mux
	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		validator:      validators.NewFormValidator(),
		metrics:        newMetrics(),
		publicDir:      cfg.App.PublicDir,
		development:    cfg.App.IsDevelopment(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// Init builds the request pipeline around the route table. The result is
// immutable: interceptors and routes are fixed once Init returns.
func (h *Handler) Init() http.Handler {
	h.router = chi.NewRouter()

	table := NewRouteTable(h.logger, append(h.generalRoutes(), h.apiRoutes()...)...)
	table.Mount(h.router)

	h.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	h.router.MethodNotAllowed(CheckHTTPMethod(h.router))

	return h.pipeline().Then(h.router)
}

// MetricsRegisterer exposes the handler's registry so that background
// workers publish on the same /metrics endpoint.
func (h *Handler) MetricsRegisterer() prometheus.Registerer {
	return h.metrics.Registerer()
}
