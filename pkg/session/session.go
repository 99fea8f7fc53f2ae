package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is ephemeral proof of a successful login, addressed by an opaque
// token. Sessions live only in a Store and are never persisted to the
// application database.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	IdentityID     int64     `json:"identity_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// NewSession creates a session for the given identity with a sliding window
// of ttl from now.
func NewSession(token string, identityID int64, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		IdentityID:     identityID,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
	}
}

// IsExpired returns true if the session has passed its sliding deadline.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Touch pushes the sliding window forward: last activity becomes now and the
// deadline becomes now+ttl.
func (s *Session) Touch(ttl time.Duration) {
	if s == nil {
		return
	}
	now := time.Now()
	s.LastActivityAt = now
	s.ExpiresAt = now.Add(ttl)
}
