package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	database store.Pinger
	sessions store.Pinger

	logger *logger.Logger
}

// NewHealthService checks database and, when the session backend is separate,
// sessions. A nil sessions pinger reports the database status for both.
func NewHealthService(database, sessions store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		database: database,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := models.HealthStatus{
		Status:   models.StatusOK,
		Database: s.ping(ctx, "database", s.database),
	}

	if s.sessions != nil {
		status.Sessions = s.ping(ctx, "sessions", s.sessions)
	} else {
		status.Sessions = status.Database
	}

	if status.Database != models.StatusOK || status.Sessions != models.StatusOK {
		status.Status = models.StatusUnavailable
	}

	return status
}

func (s *healthService) ping(ctx context.Context, name string, p store.Pinger) string {
	if err := p.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("store", name).Msg("health check failed")
		return models.StatusUnavailable
	}
	return models.StatusOK
}
