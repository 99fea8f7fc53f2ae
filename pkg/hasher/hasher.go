package hasher

// Hasher turns a plaintext password and a random salt into a storable digest
// and verifies plaintexts against stored digest/salt pairs.
//
// A digest is only meaningful together with the salt that produced it; the
// two are persisted as a pair and rotated together. Implementations must
// compare digests in constant time.
type Hasher interface {
	// GenerateSalt returns a new random salt, encoded for storage.
	GenerateSalt() (string, error)

	// Hash computes the digest of password combined with salt.
	// Same password and same salt always produce the same digest.
	Hash(password, salt string) (string, error)

	// Verify reports whether password matches the stored digest/salt pair.
	// Malformed stored data is a verification failure, never a panic.
	Verify(password, digest, salt string) bool
}
