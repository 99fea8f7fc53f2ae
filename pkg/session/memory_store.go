package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using an in-process map guarded by a RWMutex.
// Suitable for single-process deployments; abandoned sessions are reclaimed
// lazily on access and, when a cleanup interval is configured, by a
// background sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ticker   *time.Ticker
	done     chan struct{}
}

// NewMemoryStore creates a new in-memory session store. A positive
// cleanupInterval starts a background goroutine that sweeps expired
// sessions; zero disables the sweep.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Create stores a new session, refusing to overwrite a live one.
func (m *MemoryStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.sessions[session.Token]; exists && !existing.IsExpired() {
		return ErrTokenExists
	}

	sessionCopy := *session
	m.sessions[session.Token] = &sessionCopy
	return nil
}

// Get retrieves a session by token, removing it atomically if expired.
func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[token]
	if !exists {
		m.mu.RUnlock()
		return nil, ErrSessionNotFound
	}
	snapshot := *session
	m.mu.RUnlock()

	if !snapshot.IsExpired() {
		return &snapshot, nil
	}

	m.mu.Lock()
	// Re-check under the write lock so a concurrent refresh that beat us
	// here is not thrown away.
	if current, ok := m.sessions[token]; ok && current.IsExpired() {
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	m.mu.Unlock()
	return m.Get(ctx, token)
}

// Touch refreshes the sliding window of an existing session.
func (m *MemoryStore) Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[token]
	if !exists {
		return ErrSessionNotFound
	}

	session.LastActivityAt = lastActivity
	session.ExpiresAt = expiresAt
	return nil
}

// Delete removes a session by token.
func (m *MemoryStore) Delete(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.sessions[token]
	delete(m.sessions, token)
	return exists, nil
}

// DeleteByIdentity removes every session belonging to the identity.
func (m *MemoryStore) DeleteByIdentity(ctx context.Context, identityID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, session := range m.sessions {
		if session.IdentityID == identityID {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// DeleteExpired removes all expired sessions.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, token)
		}
	}

	return nil
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

// cleanupLoop runs the periodic sweep of expired sessions.
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}

// Stats returns the number of live sessions and distinct identities.
func (m *MemoryStore) Stats() (sessions, identities int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[int64]bool)
	for _, session := range m.sessions {
		sessions++
		seen[session.IdentityID] = true
	}
	return sessions, len(seen)
}
