package auth

import "errors"

var (
	// ErrIdentityNotFound is returned by UserDirectory implementations when
	// no identity matches the lookup.
	ErrIdentityNotFound = errors.New("auth.identity_not_found")

	// ErrRoleNotFound is returned by RoleDirectory implementations when no
	// role matches the lookup.
	ErrRoleNotFound = errors.New("auth.role_not_found")

	// ErrDirectoryFailure wraps storage errors surfaced from the
	// directories. Distinct from business failures, which are returned as
	// result values.
	ErrDirectoryFailure = errors.New("auth.directory_failure")

	// ErrHashingFailure indicates salt generation or digest computation
	// failed.
	ErrHashingFailure = errors.New("auth.hashing_failure")
)

// Caller-facing messages for business failures. Unknown-email and
// wrong-password login attempts share one message so accounts cannot be
// enumerated through the login form.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountDisabled    = "Account is disabled"
	MsgEmailTaken         = "Email already registered"
	MsgUsernameTaken      = "Username already taken"
)
