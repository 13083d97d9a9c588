package store

import (
	"context"

	"github.com/MKhiriev/go-web-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrLoginAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionStore persists session records keyed by session id.
//
// Implementations must be safe for concurrent use. Concurrent saves of the
// same id are not coordinated: the last write wins.
type SessionStore interface {
	// Find returns the live session with the given id.
	// Missing and expired records both yield ErrSessionNotFound.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Save inserts or replaces the record. session.ExpiresAt must be set.
	Save(ctx context.Context, session *models.Session) error

	// Delete removes the record. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired purges expired records and reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// Pinger reports whether a backing connection is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
