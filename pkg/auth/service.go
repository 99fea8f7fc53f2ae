package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/pkg/audit"
	"github.com/dmitrymomot/storekit/pkg/hasher"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/rbac"
	"github.com/dmitrymomot/storekit/pkg/sanitizer"
	"github.com/dmitrymomot/storekit/pkg/session"
	"github.com/dmitrymomot/storekit/pkg/validator"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

// Service orchestrates registration, login, session validation, logout,
// password change and authorization over the injected directories.
//
// Business failures (bad input, wrong credentials, disabled account, absent
// session) come back as ordinary result values; only directory and hashing
// failures surface as errors.
type Service struct {
	users    UserDirectory
	roles    RoleDirectory
	hasher   hasher.Hasher
	sessions *session.Manager
	authz    rbac.Authorizer
	recorder *audit.Recorder
	log      *slog.Logger

	// Digest/salt pair verified against unknown-email logins so the
	// failure path costs the same as a wrong-password check.
	dummyDigest string
	dummySalt   string

	bootstrapMu   sync.Mutex
	bootstrapDone bool
}

// NewService creates the authentication service. The user and role
// directories are required; everything else has a default (bcrypt hashing,
// an in-memory session registry, the builtin role policy, no audit sink).
func NewService(users UserDirectory, roles RoleDirectory, opts ...ServiceOption) (*Service, error) {
	if users == nil {
		return nil, errors.New("auth: user directory cannot be nil")
	}
	if roles == nil {
		return nil, errors.New("auth: role directory cannot be nil")
	}

	s := &Service{
		users: users,
		roles: roles,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hasher == nil {
		s.hasher = hasher.NewBcrypt()
	}
	if s.sessions == nil {
		s.sessions = session.New()
	}
	if s.authz == nil {
		s.authz = rbac.NewDefaultAuthorizer()
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	digest, err := s.hasher.Hash("decoy-password-for-timing-parity", salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	s.dummySalt = salt
	s.dummyDigest = digest

	return s, nil
}

// Register validates the input, checks email and username uniqueness,
// resolves the default USER role and persists a new active identity.
// Validation and uniqueness failures come back in the result; only
// directory or hashing errors are returned as an error.
func (s *Service) Register(ctx context.Context, params RegisterParams) (RegisterResult, error) {
	params.Email = sanitizer.NormalizeEmail(params.Email)
	params.Username = sanitizer.NormalizeUsername(params.Username)
	params.Phone = sanitizer.NormalizePhone(params.Phone)

	if err := validator.ApplyFirst(
		validator.RequiredString("email", params.Email),
		validator.ValidEmail("email", params.Email),
		validator.RequiredString("username", params.Username),
		validator.BetweenLenString("username", params.Username, usernameMinLen, usernameMaxLen),
		validator.RequiredString("password", params.Password),
		validator.StrongPassword("password", params.Password),
		validator.PasswordsMatch("confirm_password", params.Password, params.ConfirmPassword),
		validator.RequiredString("first_name", params.FirstName),
	); err != nil {
		msg := firstMessage(err)
		s.record(ctx, nil, audit.KindRegistrationFailed, msg)
		return RegisterResult{Message: msg}, nil
	}

	if _, err := s.users.FindByEmail(ctx, params.Email); err == nil {
		s.record(ctx, nil, audit.KindRegistrationFailed, "email already registered: "+params.Email)
		return RegisterResult{Message: MsgEmailTaken}, nil
	} else if !errors.Is(err, ErrIdentityNotFound) {
		return RegisterResult{}, fmt.Errorf("%w: find by email: %w", ErrDirectoryFailure, err)
	}

	if _, err := s.users.FindByUsername(ctx, params.Username); err == nil {
		s.record(ctx, nil, audit.KindRegistrationFailed, "username already taken: "+params.Username)
		return RegisterResult{Message: MsgUsernameTaken}, nil
	} else if !errors.Is(err, ErrIdentityNotFound) {
		return RegisterResult{}, fmt.Errorf("%w: find by username: %w", ErrDirectoryFailure, err)
	}

	role, err := s.defaultRole(ctx)
	if err != nil {
		return RegisterResult{}, err
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	digest, err := s.hasher.Hash(params.Password, salt)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	identity := &Identity{
		Username:       params.Username,
		Email:          params.Email,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Phone:          params.Phone,
		RoleID:         &role.ID,
		Active:         true,
		PasswordDigest: digest,
		PasswordSalt:   salt,
	}
	if err := s.users.Create(ctx, identity); err != nil {
		return RegisterResult{}, fmt.Errorf("%w: create identity: %w", ErrDirectoryFailure, err)
	}

	s.record(ctx, &identity.ID, audit.KindRegistered, "identity registered: "+identity.Username)
	s.log.InfoContext(ctx, "identity registered",
		logger.UserID(identity.ID),
		logger.Component("auth"),
	)

	return RegisterResult{OK: true, Identity: identity.sanitized()}, nil
}

// Login authenticates the email/password pair and opens a session.
// Unknown email and wrong password share the same failure message and a
// comparable verification cost; the audit trail still distinguishes them.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = sanitizer.NormalizeEmail(email)

	identity, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			s.hasher.Verify(password, s.dummyDigest, s.dummySalt)
			s.record(ctx, nil, audit.KindLoginFailed, "unknown email: "+email)
			return LoginResult{Message: MsgInvalidCredentials}, nil
		}
		return LoginResult{}, fmt.Errorf("%w: find by email: %w", ErrDirectoryFailure, err)
	}

	if !s.hasher.Verify(password, identity.PasswordDigest, identity.PasswordSalt) {
		s.record(ctx, &identity.ID, audit.KindLoginFailed, "wrong password")
		return LoginResult{Message: MsgInvalidCredentials}, nil
	}

	if !identity.Active {
		s.record(ctx, &identity.ID, audit.KindLoginFailed, "account disabled")
		return LoginResult{Message: MsgAccountDisabled}, nil
	}

	now := time.Now()
	identity.LastLoginAt = &now
	if err := s.users.Update(ctx, identity); err != nil {
		return LoginResult{}, fmt.Errorf("%w: update last login: %w", ErrDirectoryFailure, err)
	}

	token, err := s.sessions.Create(ctx, identity.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	s.record(ctx, &identity.ID, audit.KindLoggedIn, "login successful")
	s.log.InfoContext(ctx, "identity logged in",
		logger.UserID(identity.ID),
		logger.SessionToken(token),
		logger.Component("auth"),
	)

	return LoginResult{OK: true, Identity: identity.sanitized(), Token: token}, nil
}

// ValidateSession resolves the token to its identity, refreshing the
// sliding window. ok is false for unknown, expired or logged-out tokens;
// only a directory failure is returned as an error.
func (s *Service) ValidateSession(ctx context.Context, token string) (*Identity, bool, error) {
	identityID, err := s.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionExpired) {
			s.record(ctx, nil, audit.KindSessionExpired, "session expired")
			return nil, false, nil
		}
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("validate session: %w", err)
	}

	identity, err := s.users.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			s.sessions.Invalidate(ctx, token)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: find by id: %w", ErrDirectoryFailure, err)
	}

	if !identity.Active {
		s.sessions.Invalidate(ctx, token)
		return nil, false, nil
	}

	return identity.sanitized(), true, nil
}

// Logout removes the session and reports whether one was removed. The
// audit event is emitted only when a session actually existed.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := s.sessions.Invalidate(ctx, token)
	if err != nil {
		return false, fmt.Errorf("invalidate session: %w", err)
	}
	if removed {
		s.record(ctx, nil, audit.KindLoggedOut, "logout")
	}
	return removed, nil
}

// ChangePassword rotates the identity's digest/salt pair and invalidates
// every session for that identity. Precondition failures (weak or
// mismatched new password, unknown identity, wrong current password) all
// return false without revealing which one failed.
func (s *Service) ChangePassword(ctx context.Context, identityID int64, currentPassword, newPassword, confirmPassword string) (bool, error) {
	if err := validator.ApplyFirst(
		validator.RequiredString("password", newPassword),
		validator.StrongPassword("password", newPassword),
		validator.PasswordsMatch("confirm_password", newPassword, confirmPassword),
	); err != nil {
		s.record(ctx, &identityID, audit.KindPasswordChangeFailed, firstMessage(err))
		return false, nil
	}

	identity, err := s.users.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			s.record(ctx, &identityID, audit.KindPasswordChangeFailed, "identity not found")
			return false, nil
		}
		return false, fmt.Errorf("%w: find by id: %w", ErrDirectoryFailure, err)
	}

	if !s.hasher.Verify(currentPassword, identity.PasswordDigest, identity.PasswordSalt) {
		s.record(ctx, &identity.ID, audit.KindPasswordChangeFailed, "wrong current password")
		return false, nil
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	digest, err := s.hasher.Hash(newPassword, salt)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	identity.PasswordDigest = digest
	identity.PasswordSalt = salt
	if err := s.users.Update(ctx, identity); err != nil {
		return false, fmt.Errorf("%w: update credentials: %w", ErrDirectoryFailure, err)
	}

	if _, err := s.sessions.InvalidateIdentity(ctx, identity.ID); err != nil {
		return false, fmt.Errorf("invalidate sessions: %w", err)
	}

	s.record(ctx, &identity.ID, audit.KindPasswordChanged, "password changed")
	s.log.InfoContext(ctx, "password changed",
		logger.UserID(identity.ID),
		logger.Component("auth"),
	)

	return true, nil
}

// Authorize checks whether the identity's role grants the capability.
// Returns nil when allowed, rbac.ErrInvalidRole or
// rbac.ErrInsufficientPermissions when denied.
func (s *Service) Authorize(ctx context.Context, identity *Identity, capability string) error {
	if identity == nil || identity.RoleID == nil {
		return rbac.ErrInvalidRole
	}

	role, err := s.roles.FindByID(ctx, *identity.RoleID)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return rbac.ErrInvalidRole
		}
		return fmt.Errorf("%w: find role: %w", ErrDirectoryFailure, err)
	}

	return s.authz.Can(role.Name, capability)
}

// Close releases the session registry's background resources and flushes
// the audit sink.
func (s *Service) Close() error {
	err := s.sessions.Close()
	if cerr := s.recorder.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// defaultRole resolves the USER role, creating the three builtin roles on
// first use if the directory does not hold them yet.
func (s *Service) defaultRole(ctx context.Context) (*Role, error) {
	role, err := s.roles.FindByName(ctx, rbac.RoleUser)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, ErrRoleNotFound) {
		return nil, fmt.Errorf("%w: find role: %w", ErrDirectoryFailure, err)
	}

	if err := s.ensureDefaultRoles(ctx); err != nil {
		return nil, err
	}

	role, err = s.roles.FindByName(ctx, rbac.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("%w: find role after bootstrap: %w", ErrDirectoryFailure, err)
	}
	return role, nil
}

// ensureDefaultRoles creates any of the builtin roles missing from the
// directory. Serialized so concurrent registrations bootstrap once.
func (s *Service) ensureDefaultRoles(ctx context.Context) error {
	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	if s.bootstrapDone {
		return nil
	}

	defaults := []Role{
		{Name: rbac.RoleUser, Description: "Customer account"},
		{Name: rbac.RoleManager, Description: "Store manager"},
		{Name: rbac.RoleAdmin, Description: "Administrator"},
	}
	for i := range defaults {
		if _, err := s.roles.FindByName(ctx, defaults[i].Name); err == nil {
			continue
		} else if !errors.Is(err, ErrRoleNotFound) {
			return fmt.Errorf("%w: find role: %w", ErrDirectoryFailure, err)
		}
		if err := s.roles.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("%w: create role %s: %w", ErrDirectoryFailure, defaults[i].Name, err)
		}
	}

	s.bootstrapDone = true
	return nil
}

// record emits an audit event. Recording never fails an operation.
func (s *Service) record(ctx context.Context, identityID *int64, kind audit.Kind, message string) {
	s.recorder.Record(ctx, identityID, kind, message)
}

func firstMessage(err error) string {
	ve := validator.ExtractValidationErrors(err)
	if ve.IsEmpty() {
		return err.Error()
	}
	return ve[0].Field + ": " + ve[0].Message
}
