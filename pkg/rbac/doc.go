// Package rbac provides coarse role-based authorization as a static
// role→capability policy table.
//
// The builtin store policy is a total function over roles:
//
//   - ADMIN holds every capability
//   - MANAGER holds capabilities prefixed MANAGE_ or VIEW_
//   - USER holds capabilities prefixed VIEW_, plus PLACE_ORDER
//   - any other or missing role holds nothing
//
// This is deliberately not a per-resource ACL. The Authorizer and
// PolicySource interfaces exist so a fine-grained permission engine can be
// substituted later without touching the authentication service.
//
//	authz := rbac.NewDefaultAuthorizer()
//	if err := authz.Can(rbac.RoleManager, "MANAGE_INVENTORY"); err != nil {
//	    // denied
//	}
//
// The grant table is immutable after construction, so checks are safe for
// unlimited concurrent use without locking.
package rbac
