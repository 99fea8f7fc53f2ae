package hasher

import "errors"

var (
	// ErrSaltGeneration indicates the system's random source failed.
	ErrSaltGeneration = errors.New("hasher.salt_generation_failed")

	// ErrInvalidSaltLength indicates a salt length below the minimum.
	ErrInvalidSaltLength = errors.New("hasher.invalid_salt_length")

	// ErrEmptySalt indicates Hash was called without a salt.
	ErrEmptySalt = errors.New("hasher.empty_salt")

	// ErrHashing indicates the hashing algorithm itself failed.
	ErrHashing = errors.New("hasher.hashing_failed")
)
