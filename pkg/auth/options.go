package auth

import (
	"log/slog"

	"github.com/dmitrymomot/storekit/pkg/audit"
	"github.com/dmitrymomot/storekit/pkg/hasher"
	"github.com/dmitrymomot/storekit/pkg/rbac"
	"github.com/dmitrymomot/storekit/pkg/session"
)

// ServiceOption configures the authentication service.
type ServiceOption func(*Service)

// WithHasher swaps the password hasher. Defaults to bcrypt.
func WithHasher(h hasher.Hasher) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// WithSessionManager sets the session registry. Defaults to an in-memory
// registry with the standard sliding timeout.
func WithSessionManager(m *session.Manager) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.sessions = m
		}
	}
}

// WithAuthorizer sets the role policy. Defaults to the builtin
// ADMIN/MANAGER/USER policy.
func WithAuthorizer(a rbac.Authorizer) ServiceOption {
	return func(s *Service) {
		if a != nil {
			s.authz = a
		}
	}
}

// WithAuditRecorder sets the audit sink. Auditing is optional; without a
// recorder events are dropped.
func WithAuditRecorder(r *audit.Recorder) ServiceOption {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithLogger sets the service logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}
