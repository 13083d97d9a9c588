package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/internal/utils"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// IDGenerator produces new session ids.
type IDGenerator interface {
	Generate() string
}

// Manager loads, persists and destroys sessions on behalf of the request
// pipeline. It is safe for concurrent use.
type Manager struct {
	store store.SessionStore
	ids   IDGenerator

	secret     string
	cookieName string
	ttl        time.Duration
	secure     bool

	now    func() time.Time
	logger *logger.Logger
}

// NewManager constructs a Manager from the application settings.
func NewManager(sessionStore store.SessionStore, cfg config.App, logger *logger.Logger) *Manager {
	return &Manager{
		store:      sessionStore,
		ids:        utils.NewUUIDGenerator(),
		secret:     cfg.SessionSecret,
		cookieName: cfg.SessionCookieName,
		ttl:        cfg.SessionTTL,
		secure:     cfg.SessionCookieSecure,
		now:        time.Now,
		logger:     logger,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// TTL returns the session lifetime counted from the last write.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Sign returns the cookie value for id.
func (m *Manager) Sign(id string) string {
	return id + "." + utils.SignString(id, m.secret)
}

// Verify extracts the session id from a signed cookie value.
// ok is false for unsigned or tampered values.
func (m *Manager) Verify(value string) (id string, ok bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", false
	}
	id = value[:i]
	if !utils.VerifySignature(id, value[i+1:], m.secret) {
		return "", false
	}
	return id, true
}

// New returns a fresh, unsaved session.
func (m *Manager) New() *models.Session {
	return models.NewSession(m.ids.Generate(), m.now())
}

// Load resolves the session for a verified id. An empty id, an unknown id and
// an expired record all yield a new session with a new id. Only a failing
// store is reported as an error.
func (m *Manager) Load(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return m.New(), nil
	}

	session, err := m.store.Find(ctx, id)
	switch {
	case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, store.ErrSessionCorrupt):
		logger.FromContext(ctx).Debug().Err(err).Str("session_id", id).Msg("starting new session")
		return m.New(), nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrLoadingSession, err)
	}

	if session.IsExpired(m.now()) {
		return m.New(), nil
	}

	return session, nil
}

// Commit persists a modified session, refreshing its expiry, and sets the
// session cookie on w. Unmodified sessions are neither saved nor re-sent.
//
// Commit must run before the response headers are written.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	if session == nil || !session.Modified() {
		return nil
	}

	now := m.now()
	session.ExpiresAt = now.Add(m.ttl)
	if err := m.store.Save(ctx, session); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}
	session.MarkSaved()

	m.setCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    m.Sign(session.ID),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Regenerate replaces session with a new id carrying the same state and
// removes the old record. It is used when the principal changes.
func (m *Manager) Regenerate(ctx context.Context, session *models.Session) (*models.Session, error) {
	if !session.IsNew() {
		if err := m.store.Delete(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDestroyingSession, err)
		}
	}

	regenerated := m.New()
	regenerated.UserID = session.UserID
	regenerated.Flash = session.Flash
	regenerated.MarkModified()

	return regenerated, nil
}

// Destroy removes the session record, expires the cookie and returns a fresh
// session that replaces the destroyed one for the rest of the request.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, session *models.Session) (*models.Session, error) {
	if session != nil && !session.IsNew() {
		if err := m.store.Delete(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDestroyingSession, err)
		}
	}

	m.setCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return m.New(), nil
}

// setCookie replaces any Set-Cookie for the session cookie queued earlier in
// the same response.
func (m *Manager) setCookie(w http.ResponseWriter, cookie *http.Cookie) {
	header := w.Header()
	prefix := m.cookieName + "="

	kept := header["Set-Cookie"][:0]
	for _, v := range header["Set-Cookie"] {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		header.Del("Set-Cookie")
	} else {
		header["Set-Cookie"] = kept
	}

	http.SetCookie(w, cookie)
}
