package hasher

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with the bcrypt KDF from golang.org/x/crypto.
//
// bcrypt embeds its own salt in the digest, so the external salt column is
// kept only to satisfy the stored digest/salt pairing; Hash and Verify ignore
// it. This is the recommended implementation for new deployments.
type Bcrypt struct {
	cost int
}

// BcryptOption configures a Bcrypt hasher.
type BcryptOption func(*Bcrypt)

// WithCost sets the bcrypt cost factor.
func WithCost(cost int) BcryptOption {
	return func(h *Bcrypt) {
		h.cost = cost
	}
}

// NewBcrypt creates a bcrypt based hasher with bcrypt.DefaultCost unless
// overridden.
func NewBcrypt(opts ...BcryptOption) *Bcrypt {
	h := &Bcrypt{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateSalt returns a random salt for storage alongside the digest.
// bcrypt does not use it; it exists so both hashers share one storage schema.
func (h *Bcrypt) GenerateSalt() (string, error) {
	b := make([]byte, DefaultSaltLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrSaltGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash computes the bcrypt digest of password. The salt argument is ignored.
func (h *Bcrypt) Hash(password, _ string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashing, err)
	}
	return string(digest), nil
}

// Verify compares password against the bcrypt digest. The salt argument is
// ignored; malformed digests fail verification.
func (h *Bcrypt) Verify(password, digest, _ string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
