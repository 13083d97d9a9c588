package handler

import (
	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, cfg, logger),
	}, nil
}
