package auth

import "time"

// Identity represents a registered account with credentials and a role.
// PasswordDigest and PasswordSalt are persisted as a pair and rotated
// together; identities handed back to callers have both fields cleared.
type Identity struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	RoleID         *int64     `json:"role_id,omitempty"`
	Active         bool       `json:"active"`
	PasswordDigest string     `json:"-"`
	PasswordSalt   string     `json:"-"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// sanitized returns a copy safe to hand back to callers, with the password
// material stripped.
func (i *Identity) sanitized() *Identity {
	if i == nil {
		return nil
	}
	out := *i
	out.PasswordDigest = ""
	out.PasswordSalt = ""
	return &out
}

// Role is a named permission group. Names are stored uppercase.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RegisterParams carries the registration form input.
type RegisterParams struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

// RegisterResult is the outcome of a registration attempt. Message is
// human-readable and safe to show to the caller.
type RegisterResult struct {
	OK       bool      `json:"ok"`
	Message  string    `json:"message,omitempty"`
	Identity *Identity `json:"identity,omitempty"`
}

// LoginResult is the outcome of a login attempt. Token is the opaque
// session token on success.
type LoginResult struct {
	OK       bool      `json:"ok"`
	Message  string    `json:"message,omitempty"`
	Identity *Identity `json:"identity,omitempty"`
	Token    string    `json:"token,omitempty"`
}
