package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
)

// SessionJanitor removes expired session records on a fixed interval.
type SessionJanitor struct {
	sessions store.SessionStore
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	removed, err := j.sessions.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Msg("error removing expired sessions")
		}
		return
	}
	if removed > 0 {
		j.logger.Info().Int64("removed", removed).Msg("expired sessions removed")
	}
}
