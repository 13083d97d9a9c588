package models

import "time"

// Flash message kinds surfaced to the rendering step.
const (
	FlashSuccess = "success_msg"
	FlashError   = "error_msg"
	FlashAuth    = "error"
)

// Session is the server-side state associated with a client through the
// signed session cookie. It is persisted as a JSON document keyed by ID.
//
// A Session tracks whether it has been modified during the current request;
// unmodified sessions are never written back to the store.
type Session struct {
	// ID is the opaque identifier carried by the cookie.
	ID string `json:"id"`

	// UserID is the authenticated principal, zero when anonymous.
	UserID int64 `json:"user_id,omitempty"`

	// Flash holds pending one-time messages grouped by kind.
	Flash map[string][]string `json:"flash,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is refreshed on every write: the TTL runs from the last save.
	ExpiresAt time.Time `json:"expires_at"`

	modified bool
	isNew    bool
}

// NewSession returns an empty, not yet persisted session.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		isNew:     true,
	}
}

// IsNew reports whether the session was created during this request.
func (s *Session) IsNew() bool {
	return s.isNew
}

// Modified reports whether the session must be written back to the store.
func (s *Session) Modified() bool {
	return s.modified
}

// MarkModified flags the session for saving.
func (s *Session) MarkModified() {
	s.modified = true
}

// MarkSaved clears the modification and novelty flags after a successful save.
func (s *Session) MarkSaved() {
	s.modified = false
	s.isNew = false
}

// IsAuthenticated reports whether a principal is bound to the session.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != 0
}

// SetUser binds (or with zero, unbinds) the principal.
func (s *Session) SetUser(userID int64) {
	if s.UserID == userID {
		return
	}
	s.UserID = userID
	s.modified = true
}

// IsExpired reports whether the session is past its expiry at now.
// A session that was never saved has no expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AddFlash queues a one-time message of the given kind.
func (s *Session) AddFlash(kind string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	if s.Flash == nil {
		s.Flash = make(map[string][]string)
	}
	s.Flash[kind] = append(s.Flash[kind], msgs...)
	s.modified = true
}

// Flashes returns a copy of the pending messages of the given kind without
// removing them. The result is never nil.
func (s *Session) Flashes(kind string) []string {
	msgs := make([]string, len(s.Flash[kind]))
	copy(msgs, s.Flash[kind])
	return msgs
}

// ConsumeFlashes drops every pending message once it has been shown.
func (s *Session) ConsumeFlashes() {
	if len(s.Flash) == 0 {
		return
	}
	s.Flash = nil
	s.modified = true
}
