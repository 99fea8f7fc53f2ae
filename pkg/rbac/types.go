package rbac

import "strings"

// Well-known role names. Role names are stored uppercase.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

// Capability name prefixes and exact capabilities used by the builtin policy.
const (
	PrefixManage = "MANAGE_"
	PrefixView   = "VIEW_"

	CapabilityPlaceOrder = "PLACE_ORDER"
)

// Grant describes what a role may do. A capability is allowed when the grant
// covers everything, lists the capability exactly, or lists one of its name
// prefixes.
type Grant struct {
	// All grants every capability.
	All bool

	// Prefixes are capability-name prefixes this grant covers.
	Prefixes []string

	// Capabilities are exact capability names this grant covers.
	Capabilities []string
}

// Allows reports whether the grant covers the capability.
func (g Grant) Allows(capability string) bool {
	if capability == "" {
		return false
	}
	if g.All {
		return true
	}
	for _, c := range g.Capabilities {
		if c == capability {
			return true
		}
	}
	for _, p := range g.Prefixes {
		if strings.HasPrefix(capability, p) {
			return true
		}
	}
	return false
}

// DefaultPolicy returns the builtin store policy, a total function over
// roles: ADMIN holds everything, MANAGER manages and views, USER views and
// places orders, any other role holds nothing.
func DefaultPolicy() map[string]Grant {
	return map[string]Grant{
		RoleAdmin: {All: true},
		RoleManager: {
			Prefixes: []string{PrefixManage, PrefixView},
		},
		RoleUser: {
			Prefixes:     []string{PrefixView},
			Capabilities: []string{CapabilityPlaceOrder},
		},
	}
}
