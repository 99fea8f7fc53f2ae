package session

import "errors"

var (
	// ErrInvalidSession indicates a session record that cannot be stored.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session passed its sliding deadline.
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session exists for the token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenExists indicates a live session already uses the token.
	ErrTokenExists = errors.New("session.token_exists")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrTokenCollision indicates token minting kept colliding past the
	// retry budget.
	ErrTokenCollision = errors.New("session.token_collision")
)
