package session

import (
	"context"
	"time"
)

// Store defines the interface for session persistence. The in-memory
// implementation is the default; a distributed key-value store with TTL
// support (see RedisStore) can be substituted without changing the Manager's
// contract.
//
// All methods must be safe for concurrent use, and the check-then-act
// sequences on a single token (expired removal in Get, refresh in Touch)
// must be atomic with respect to each other: a removed session must never be
// resurrected by a concurrent refresh.
type Store interface {
	// Create stores a new session. A live session under the same token is
	// reported as ErrTokenExists so the caller can mint a fresh token.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token. An expired session is atomically
	// removed and reported as ErrSessionExpired; an unknown token as
	// ErrSessionNotFound.
	Get(ctx context.Context, token string) (*Session, error)

	// Touch refreshes the sliding window of an existing session. Returns
	// ErrSessionNotFound if the session no longer exists.
	Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error

	// Delete removes a session by token and reports whether it was present.
	Delete(ctx context.Context, token string) (bool, error)

	// DeleteByIdentity removes every session belonging to the identity and
	// returns how many were removed.
	DeleteByIdentity(ctx context.Context, identityID int64) (int, error)

	// DeleteExpired removes all expired sessions. Stores whose backend
	// expires keys natively may implement this as a no-op.
	DeleteExpired(ctx context.Context) error
}
