package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

// Storages groups every persistence dependency of the server.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	SessionStore   SessionStore

	redis *redisSessionStore
}

// NewStorages connects to the database selected by the run mode, applies
// migrations and builds the configured session backend.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.ActiveDSN(), log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}

	switch cfg.Storage.Sessions.Backend {
	case config.SessionBackendRedis:
		redisCfg := cfg.Storage.Sessions.Redis
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Address,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		storages.redis = NewRedisSessionStore(client, log)
		if err = storages.redis.PingContext(ctx); err != nil {
			storages.Close()
			return nil, fmt.Errorf("%w: redis: %w", ErrStoreUnavailable, err)
		}
		storages.SessionStore = storages.redis
	default:
		storages.SessionStore = NewSQLSessionStore(db, log)
	}

	return storages, nil
}

// Pingers returns the named connections watched by the connection monitor.
func (s *Storages) Pingers() map[string]Pinger {
	pingers := map[string]Pinger{"database": s.DB}
	if s.redis != nil {
		pingers["sessions"] = s.redis
	}
	return pingers
}

// Close releases every open connection.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
