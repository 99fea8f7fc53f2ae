// Package hasher provides salted password hashing behind a single Hasher
// interface so the algorithm can be swapped without touching callers.
//
// Two implementations ship with the package:
//
//   - Legacy: SHA-256 over password+salt, reproducing the digests existing
//     store databases already contain. Fast hashes are weak against offline
//     brute force; keep Legacy only for verifying pre-migration data.
//   - Bcrypt: the bcrypt KDF from golang.org/x/crypto, recommended for all
//     new deployments.
//
// The contract both implementations honor: the same password and salt always
// produce the same digest, digests are compared in constant time, and
// malformed stored data results in a failed verification rather than an
// error or panic.
//
// # Usage
//
//	h := hasher.NewBcrypt()
//
//	salt, err := h.GenerateSalt()
//	if err != nil { ... }
//	digest, err := h.Hash(password, salt)
//	if err != nil { ... }
//
//	// later
//	if !h.Verify(candidate, digest, salt) {
//	    // wrong password
//	}
//
// Migrating between algorithms is a matter of re-hashing on the next
// successful login: verify with the old hasher, then store a digest from the
// new one.
package hasher
