package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_IsNewAndUnmodified(t *testing.T) {
	s := NewSession("abc", time.Now())

	assert.True(t, s.IsNew())
	assert.False(t, s.Modified())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_FlashesArePeekedUntilConsumed(t *testing.T) {
	s := NewSession("abc", time.Now())
	s.AddFlash(FlashError, "first", "second")
	require.True(t, s.Modified())
	s.MarkSaved()

	msgs := s.Flashes(FlashError)
	assert.Equal(t, []string{"first", "second"}, msgs)
	assert.False(t, s.Modified(), "reading flashes must not dirty the session")

	msgs[0] = "changed"
	assert.Equal(t, []string{"first", "second"}, s.Flashes(FlashError))

	s.ConsumeFlashes()
	assert.True(t, s.Modified(), "consuming flashes must mark the session for saving")
	assert.Empty(t, s.Flashes(FlashError))
}

func TestSession_ConsumeWithoutFlashesIsNoop(t *testing.T) {
	s := NewSession("abc", time.Now())

	s.ConsumeFlashes()
	assert.False(t, s.Modified())
}

func TestSession_FlashesNeverNil(t *testing.T) {
	s := NewSession("abc", time.Now())

	msgs := s.Flashes(FlashSuccess)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestSession_AddFlashWithoutMessagesIsNoop(t *testing.T) {
	s := NewSession("abc", time.Now())
	s.AddFlash(FlashSuccess)

	assert.False(t, s.Modified())
	assert.Nil(t, s.Flash)
}

func TestSession_SetUser(t *testing.T) {
	s := NewSession("abc", time.Now())

	s.SetUser(0)
	assert.False(t, s.Modified(), "unchanged principal should not dirty the session")

	s.SetUser(7)
	assert.True(t, s.Modified())
	assert.True(t, s.IsAuthenticated())
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "never saved", want: false},
		{name: "in the future", expiresAt: now.Add(time.Minute), want: false},
		{name: "exactly now", expiresAt: now, want: true},
		{name: "in the past", expiresAt: now.Add(-24 * time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.IsExpired(now))
		})
	}
}

func TestSession_NilIsNotAuthenticated(t *testing.T) {
	var s *Session
	assert.False(t, s.IsAuthenticated())
}
