// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted, one-way representation of a plaintext password.
	// Two calls with the same plaintext produce different outputs.
	Hash(password string) (string, error)

	// Verify reports whether password matches a hash produced by Hash.
	// A hash that cannot be parsed yields an error wrapping errors.ErrMalformedStoredHash.
	Verify(password, hash string) (bool, error)
}
