// Package storekit provides the credential and session management core for
// store-management backends.
//
// StoreKit is a library-level service: it owns no wire protocol and ships no
// HTTP or CLI surface. A front end (text menu, REST API) maps its own
// request/response pairs onto the operations exposed by pkg/auth and carries
// the session token as an opaque bearer credential.
//
// Packages:
//
//   - pkg/auth      – the authentication service: register, login, logout,
//     session validation, password change, role-based authorization
//   - pkg/session   – concurrent session registry with sliding expiration,
//     pluggable stores (in-memory, Redis)
//   - pkg/hasher    – salted password hashing behind a swappable interface
//   - pkg/validator – rule-based input validation
//   - pkg/rbac      – static role→capability policy
//   - pkg/audit     – fire-and-forget security event sink
//   - pkg/sanitizer – input normalization helpers
//   - pkg/config    – env-based configuration loading
//   - pkg/logger    – slog factory and typed attributes
//   - pkg/redis     – Redis connection helpers
//
// Persistence of users, roles and audit events is delegated to directory and
// storage interfaces; StoreKit never owns a database schema. Wiring is
// explicit dependency construction: build the stores, hasher and directories
// once at startup and hand them to auth.NewService; there are no package
// level singletons, so tests can run isolated instances in parallel.
package storekit
