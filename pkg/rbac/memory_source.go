package rbac

import (
	"context"
	"sync"
)

// inMemPolicySource is a PolicySource that serves grants from memory.
// It makes defensive copies to prevent external modifications.
type inMemPolicySource struct {
	mu     sync.RWMutex
	grants map[string]Grant
}

// NewInMemPolicySource creates an in-memory policy source from a map of
// grants, deep-copying the input.
func NewInMemPolicySource(grants map[string]Grant) PolicySource {
	return &inMemPolicySource{grants: copyGrants(grants)}
}

func (s *inMemPolicySource) Load(ctx context.Context) (map[string]Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGrants(s.grants), nil
}

func copyGrants(grants map[string]Grant) map[string]Grant {
	out := make(map[string]Grant, len(grants))
	for name, grant := range grants {
		g := Grant{All: grant.All}
		if grant.Prefixes != nil {
			g.Prefixes = make([]string, len(grant.Prefixes))
			copy(g.Prefixes, grant.Prefixes)
		}
		if grant.Capabilities != nil {
			g.Capabilities = make([]string, len(grant.Capabilities))
			copy(g.Capabilities, grant.Capabilities)
		}
		out[name] = g
	}
	return out
}
