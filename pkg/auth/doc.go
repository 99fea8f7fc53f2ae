// Package auth implements the credential and session core of the
// store-management backend: registration, login, sliding-window session
// validation, logout, password change and capability checks.
//
// The service is built from injected collaborators: a UserDirectory and
// RoleDirectory for persistence, a hasher.Hasher for password digests, a
// session.Manager for tokens, an rbac.Authorizer for the role policy and an
// optional audit.Recorder for security events.
//
//	users := newUserDirectory(db)
//	roles := newRoleDirectory(db)
//	svc, err := auth.NewService(users, roles,
//		auth.WithSessionManager(session.New(session.WithTimeout(30*time.Minute))),
//		auth.WithAuditRecorder(audit.NewRecorder(storage)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Login(ctx, "owner@example.com", "Str0ng!Pass")
//	if err != nil {
//		// directory or session registry failure
//	}
//	if !result.OK {
//		// business failure, result.Message is safe to show
//	}
//
// Business failures never come back as errors: registration and login
// return result values carrying a caller-safe message, ChangePassword
// returns a bare boolean, ValidateSession reports absent sessions with
// ok=false. Errors are reserved for directory, hashing and session
// registry failures.
package auth
