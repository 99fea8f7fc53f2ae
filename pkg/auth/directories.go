package auth

import "context"

// UserDirectory is the persistent store of identities. The backend supplies
// an implementation on top of its user table; the service only depends on
// these operations.
//
// Lookup methods return ErrIdentityNotFound when no identity matches; any
// other error is treated as an infrastructure failure. Create assigns the
// identity's ID and audit timestamps.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByUsername(ctx context.Context, username string) (*Identity, error)
	FindByID(ctx context.Context, id int64) (*Identity, error)
	Create(ctx context.Context, identity *Identity) error
	Update(ctx context.Context, identity *Identity) error
}

// RoleDirectory is the persistent store of roles. Lookup methods return
// ErrRoleNotFound when no role matches. Create assigns the role's ID.
type RoleDirectory interface {
	FindByName(ctx context.Context, name string) (*Role, error)
	FindByID(ctx context.Context, id int64) (*Role, error)
	Create(ctx context.Context, role *Role) error
}
