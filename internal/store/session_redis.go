package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

const redisSessionKeyPrefix = "sess:"

// redisSessionStore keeps each session document under its own key with a
// native TTL, so expired records disappear without a cleanup pass.
type redisSessionStore struct {
	client redis.UniversalClient
	now    func() time.Time
	logger *logger.Logger
}

// NewRedisSessionStore constructs a [SessionStore] over a redis client.
func NewRedisSessionStore(client redis.UniversalClient, logger *logger.Logger) *redisSessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		client: client,
		now:    time.Now,
		logger: logger,
	}
}

func (s *redisSessionStore) Find(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, redisSessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Find").Msg("error reading session")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	session, err := decodeSession(id, data)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(s.now()) {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, session.ID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.client.Set(ctx, redisSessionKeyPrefix+session.ID, data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisSessionKeyPrefix+id).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired is a no-op: redis evicts expired keys itself.
func (s *redisSessionStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

// PingContext implements [Pinger].
func (s *redisSessionStore) PingContext(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the redis connection pool.
func (s *redisSessionStore) Close() error {
	return s.client.Close()
}
