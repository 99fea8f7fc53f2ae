package session

import "time"

// Config holds session registry configuration.
type Config struct {
	// Timeout is the sliding-expiration window: a session is valid while
	// calls keep occurring within Timeout of each other.
	Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`

	// CleanupInterval for the background sweep of expired sessions
	// (0 disables it; expiry is always enforced lazily on access).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// TokenRetries bounds how often a colliding token is re-minted before
	// giving up. Collisions on 256-bit random tokens are theoretical.
	TokenRetries int `env:"SESSION_TOKEN_RETRIES" envDefault:"3"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		TokenRetries:    3,
	}
}
