// Package session provides a concurrent session registry with sliding
// expiration for login sessions addressed by opaque bearer tokens.
//
// A Manager orchestrates the session life-cycle: it mints cryptographically
// random tokens (retrying the theoretical collision instead of failing),
// refreshes the sliding window on every successful validation and removes
// sessions on logout, password change or lazily on first access after
// expiry. Persistence is behind the Store interface; a RWMutex-guarded
// MemoryStore ships for single-process deployments and a RedisStore for
// sharing sessions across processes.
//
// # Life-cycle
//
// Per token the states are ABSENT → ACTIVE → (EXPIRED | LOGGED_OUT).
// Validation self-loops on ACTIVE while calls keep occurring within the
// timeout window of each other. Expiry and logout are terminal: a removed
// token cannot be revived, only a new login mints a new session.
//
// # Usage
//
//	manager := session.New(session.WithTimeout(30 * time.Minute))
//	defer manager.Close()
//
//	token, err := manager.Create(ctx, identityID)
//	...
//	id, err := manager.Validate(ctx, token)
//	switch {
//	case errors.Is(err, session.ErrSessionExpired):
//	    // found but past its deadline, audit-worthy
//	case errors.Is(err, session.ErrSessionNotFound):
//	    // never existed or already invalidated
//	}
//
// # Concurrency
//
// All registry operations are safe under concurrent invocation. The
// check-then-act sequences on one token are atomic with respect to each
// other: an expired-removal racing a refresh never resurrects a removed
// session, and no caller observes a torn session record. The registry never
// holds a lock across anything slower than a map operation or a single
// store round-trip.
package session
