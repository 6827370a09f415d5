package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"authgate/internal/domain/service"

	"github.com/pkg/errors"
)

// SessionTokenBytes is the entropy of a session token; hex doubles its length.
const SessionTokenBytes = 32

type sha256TokenGenerator struct{}

// NewSessionTokenGenerator returns a generator of hex tokens hashed with SHA-256.
func NewSessionTokenGenerator() service.SessionTokenGenerator {
	return sha256TokenGenerator{}
}

// Generate creates a secure random token and its hash.
// The plaintext token goes to the client; the hash goes to the store.
func (g sha256TokenGenerator) Generate() (token, hash string, err error) {
	tokenBytes := make([]byte, SessionTokenBytes)
	if _, err = rand.Read(tokenBytes); err != nil {
		return "", "", errors.Wrap(err, "failed to generate session token")
	}

	token = hex.EncodeToString(tokenBytes)

	return token, g.Hash(token), nil
}

// Hash computes the SHA-256 hash of a session token.
func (sha256TokenGenerator) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
