package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

const sessionsTable = "sessions"

// sqlSessionStore keeps session documents in the "sessions" table of the
// main database. Expiry is enforced on read; DeleteExpired reclaims space.
type sqlSessionStore struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLSessionStore constructs a [SessionStore] over db.
func NewSQLSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating sql session store")
	return &sqlSessionStore{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqlSessionStore) Find(ctx context.Context, id string) (*models.Session, error) {
	query, args, err := s.db.builder.
		Select("data").
		From(sessionsTable).
		Where(sq.Eq{"session_id": id}).
		Where(sq.Gt{"expires_at": s.now().UTC()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSessionStore.Find").Msg("error selecting session")
		return nil, s.db.wrapQueryError(err)
	}

	return decodeSession(id, []byte(data))
}

func (s *sqlSessionStore) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	query, args, err := s.db.builder.
		Insert(sessionsTable).
		Columns("session_id", "data", "expires_at").
		Values(session.ID, string(data), session.ExpiresAt.UTC()).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSessionStore.Save").Msg("error saving session")
		return s.db.wrapQueryError(err)
	}

	return nil
}

func (s *sqlSessionStore) Delete(ctx context.Context, id string) error {
	query, args, err := s.db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"session_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSessionStore.Delete").Msg("error deleting session")
		return s.db.wrapQueryError(err)
	}

	return nil
}

func (s *sqlSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := s.db.builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": s.now().UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.db.wrapQueryError(err)
	}

	return result.RowsAffected()
}

// decodeSession restores a stored document; the key is authoritative for the id.
func decodeSession(id string, data []byte) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionCorrupt, err)
	}
	session.ID = id

	return session, nil
}
