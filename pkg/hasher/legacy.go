package hasher

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

// DefaultSaltLength is the number of random bytes in a generated salt.
const DefaultSaltLength = 16

// Legacy hashes passwords as SHA-256 over password+salt.
//
// This scheme is what existing store databases contain, so it is kept for
// digest compatibility. A single fast hash is cheap to brute-force offline;
// use Bcrypt for new deployments and keep Legacy only to verify digests
// produced before the migration.
type Legacy struct {
	saltLength int
}

// LegacyOption configures a Legacy hasher.
type LegacyOption func(*Legacy)

// WithSaltLength sets the salt length in bytes. Lengths below
// DefaultSaltLength are rejected by NewLegacy.
func WithSaltLength(n int) LegacyOption {
	return func(h *Legacy) {
		h.saltLength = n
	}
}

// NewLegacy creates a SHA-256 based hasher.
func NewLegacy(opts ...LegacyOption) (*Legacy, error) {
	h := &Legacy{saltLength: DefaultSaltLength}
	for _, opt := range opts {
		opt(h)
	}
	if h.saltLength < DefaultSaltLength {
		return nil, errors.Join(ErrInvalidSaltLength, errors.New("salt must be at least 16 bytes"))
	}
	return h, nil
}

// GenerateSalt returns a base64 (raw URL) encoded random salt.
func (h *Legacy) GenerateSalt() (string, error) {
	b := make([]byte, h.saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrSaltGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the base64 (raw URL) encoded SHA-256 digest of password+salt.
func (h *Legacy) Hash(password, salt string) (string, error) {
	if salt == "" {
		return "", ErrEmptySalt
	}
	sum := sha256.Sum256([]byte(password + salt))
	return base64.RawURLEncoding.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares it in constant time.
func (h *Legacy) Verify(password, digest, salt string) bool {
	if digest == "" || salt == "" {
		return false
	}
	computed, err := h.Hash(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
