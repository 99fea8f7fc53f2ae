package session

import "time"

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets a custom session store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithTimeout sets the sliding-expiration window.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.config.Timeout = timeout
	}
}

// WithCleanupInterval sets the background sweep interval for the default
// memory store (0 disables the sweep).
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.config.CleanupInterval = interval
	}
}

// WithTokenRetries sets how often a colliding token is re-minted.
func WithTokenRetries(retries int) Option {
	return func(m *Manager) {
		m.config.TokenRetries = retries
	}
}
