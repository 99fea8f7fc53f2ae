package rbac

import (
	"context"
	"slices"
)

// Authorizer answers whether a role holds a capability. It is a static
// policy table, a placeholder interface a fine-grained permission engine
// can implement later without changing callers.
type Authorizer interface {
	// Can returns nil if the role holds the capability, ErrInvalidRole for
	// an unknown role and ErrInsufficientPermissions otherwise.
	Can(roleName, capability string) error

	// VerifyRole returns an error if the given role does not exist.
	VerifyRole(roleName string) error

	// Roles returns all known role names, sorted.
	Roles() []string
}

// PolicySource provides the role→grant table.
type PolicySource interface {
	// Load returns the grants for every known role.
	Load(ctx context.Context) (map[string]Grant, error)
}

// authorizer implements Authorizer over an immutable grant table.
type authorizer struct {
	// grants is treated as immutable after initialization for thread safety.
	grants map[string]Grant
	roles  []string
}

// NewAuthorizer creates an Authorizer from the provided source. The policy
// is loaded once; runtime checks never block or allocate.
func NewAuthorizer(ctx context.Context, source PolicySource) (Authorizer, error) {
	grants, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if grants == nil {
		grants = make(map[string]Grant)
	}

	roles := make([]string, 0, len(grants))
	for name := range grants {
		roles = append(roles, name)
	}
	slices.Sort(roles)

	return &authorizer{
		grants: grants,
		roles:  roles,
	}, nil
}

// NewDefaultAuthorizer creates an Authorizer over the builtin store policy.
func NewDefaultAuthorizer() Authorizer {
	a, _ := NewAuthorizer(context.Background(), NewInMemPolicySource(DefaultPolicy()))
	return a
}

func (a *authorizer) Can(roleName, capability string) error {
	grant, exists := a.grants[roleName]
	if !exists {
		return ErrInvalidRole
	}

	if !grant.Allows(capability) {
		return ErrInsufficientPermissions
	}

	return nil
}

func (a *authorizer) VerifyRole(roleName string) error {
	if _, exists := a.grants[roleName]; !exists {
		return ErrInvalidRole
	}
	return nil
}

func (a *authorizer) Roles() []string {
	return a.roles
}
