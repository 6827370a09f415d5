package service

// SessionTokenGenerator issues opaque session tokens and the digests stored in their place.
type SessionTokenGenerator interface {
	// Generate returns a new random token and its digest.
	Generate() (token, hash string, err error)

	// Hash returns the digest of an existing token.
	Hash(token string) string
}
