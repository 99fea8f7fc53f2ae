package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// Manager is the session registry: it mints tokens, owns the sliding
// expiration policy and delegates persistence to a Store. One Manager
// instance is shared by all callers of the authentication service.
type Manager struct {
	store  Store
	config Config
}

// New creates a session manager. Without WithStore it uses a MemoryStore
// with the configured cleanup interval.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	return m
}

// Create mints a new token for the identity and registers a fresh session.
// A token colliding with a live session is retried with a new token rather
// than reported as a failure.
func (m *Manager) Create(ctx context.Context, identityID int64) (string, error) {
	for i := 0; i < m.config.TokenRetries; i++ {
		token, err := generateToken()
		if err != nil {
			return "", err
		}

		err = m.store.Create(ctx, NewSession(token, identityID, m.config.Timeout))
		if errors.Is(err, ErrTokenExists) {
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}

	return "", ErrTokenCollision
}

// Validate resolves a token to the identity it belongs to and refreshes the
// sliding window. An unknown token returns ErrSessionNotFound; a session
// found expired is removed and returns ErrSessionExpired; the caller can
// use the distinction for auditing, both mean "not authenticated".
func (m *Manager) Validate(ctx context.Context, token string) (int64, error) {
	session, err := m.store.Get(ctx, token)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	if err := m.store.Touch(ctx, token, now, now.Add(m.config.Timeout)); err != nil {
		// Lost a race with invalidation or expiry between Get and Touch; the
		// session is gone and must not be reported as valid.
		if errors.Is(err, ErrSessionNotFound) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	return session.IdentityID, nil
}

// Invalidate removes the session for the token, reporting whether one was
// present. Invalidation is terminal: the token cannot be revived, only a new
// login can mint a session.
func (m *Manager) Invalidate(ctx context.Context, token string) (bool, error) {
	return m.store.Delete(ctx, token)
}

// InvalidateIdentity removes every session of the identity, forcing
// re-authentication everywhere. Used after a password change.
func (m *Manager) InvalidateIdentity(ctx context.Context, identityID int64) (int, error) {
	return m.store.DeleteByIdentity(ctx, identityID)
}

// Close releases store resources (stops the memory store's sweep goroutine).
func (m *Manager) Close() error {
	if closer, ok := m.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// generateToken creates a cryptographically secure opaque token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
