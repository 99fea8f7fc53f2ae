package rbac

import "errors"

// Domain errors for capability checks.
var (
	// ErrInvalidRole is returned when a role does not exist in the policy.
	ErrInvalidRole = errors.New("rbac.invalid_role")

	// ErrInsufficientPermissions is returned when the role does not hold
	// the required capability.
	ErrInsufficientPermissions = errors.New("rbac.insufficient_permissions")
)
