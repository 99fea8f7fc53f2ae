package audit

import (
	"fmt"
	"time"
)

// Kind identifies a security-relevant event.
type Kind string

const (
	KindRegistered           Kind = "user.registered"
	KindRegistrationFailed   Kind = "user.registration_failed"
	KindLoggedIn             Kind = "user.logged_in"
	KindLoginFailed          Kind = "user.login_failed"
	KindLoggedOut            Kind = "user.logged_out"
	KindPasswordChanged      Kind = "user.password_changed"
	KindPasswordChangeFailed Kind = "user.password_change_failed"
	KindSessionExpired       Kind = "session.expired"
)

// Event represents a single audit log entry. IdentityID is nil for events
// that cannot be attributed to an account (failed registration, login with
// an unknown email).
type Event struct {
	ID         string    `json:"id"`
	IdentityID *int64    `json:"identity_id,omitempty"`
	Kind       Kind      `json:"kind"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks if the event has all required fields.
func (e *Event) Validate() error {
	if e.Kind == "" {
		return fmt.Errorf("%w: kind is required", ErrEventValidation)
	}
	return nil
}
