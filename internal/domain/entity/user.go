// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by its email address.
// It is created exactly once by signup and never mutated afterwards.
type User struct {
	ID           uuid.UUID // Assigned by the store at creation time.
	Email        string    // Lookup key, case-sensitive. Unique across live accounts.
	PasswordHash string    // "<salt>.<derived key>", never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
