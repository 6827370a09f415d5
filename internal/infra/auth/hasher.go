// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// hashSeparator joins the salt and the derived key. Hex output never contains it.
const hashSeparator = "."

type deriveFunc func(password, salt []byte) ([]byte, error)

// kdfHasher implements PasswordHasher as "<hex salt>.<hex key>" over a configurable KDF.
type kdfHasher struct {
	saltLength uint32
	derive     deriveFunc
}

// NewPasswordHasher builds the hasher from the process-wide KDF configuration.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	kdf := config.DefaultKDF()
	if cfg != nil && cfg.Auth != nil {
		kdf = cfg.Auth.KDF
	}

	return NewKDFHasher(kdf)
}

// NewKDFHasher validates the parameters and returns a hasher bound to them.
func NewKDFHasher(kdf config.KDFConfig) (service.PasswordHasher, error) {
	if kdf.SaltLength == 0 {
		return nil, errors.New("kdf salt length must be positive")
	}
	if kdf.KeyLength == 0 {
		return nil, errors.New("kdf key length must be positive")
	}

	var derive deriveFunc
	switch kdf.Algorithm {
	case config.KDFArgon2id:
		if kdf.Time == 0 || kdf.Threads == 0 {
			return nil, errors.Errorf("argon2id needs time and threads >= 1, got t=%d p=%d", kdf.Time, kdf.Threads)
		}
		derive = func(password, salt []byte) ([]byte, error) {
			return argon2.IDKey(password, salt, kdf.Time, kdf.Memory, kdf.Threads, kdf.KeyLength), nil
		}
	case config.KDFScrypt:
		if kdf.N <= 1 || kdf.N&(kdf.N-1) != 0 {
			return nil, errors.Errorf("scrypt N must be a power of two > 1, got %d", kdf.N)
		}
		if kdf.R <= 0 || kdf.P <= 0 {
			return nil, errors.Errorf("scrypt r and p must be positive, got r=%d p=%d", kdf.R, kdf.P)
		}
		derive = func(password, salt []byte) ([]byte, error) {
			key, err := scrypt.Key(password, salt, kdf.N, kdf.R, kdf.P, int(kdf.KeyLength))

			return key, errors.Wrap(err, "scrypt")
		}
	default:
		return nil, errors.Errorf("unsupported kdf algorithm: %s", kdf.Algorithm)
	}

	return &kdfHasher{
		saltLength: kdf.SaltLength,
		derive:     derive,
	}, nil
}

// Hash generates a fresh salt and returns "<hex salt>.<hex key>".
func (h *kdfHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key, err := h.derive([]byte(password), salt)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive key")
	}

	return hex.EncodeToString(salt) + hashSeparator + hex.EncodeToString(key), nil
}

// Verify recomputes the key with the stored salt and compares in constant time.
func (h *kdfHasher) Verify(password, encoded string) (bool, error) {
	salt, stored, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	key, err := h.derive([]byte(password), salt)
	if err != nil {
		return false, errors.Wrap(err, "failed to derive key")
	}

	return subtle.ConstantTimeCompare(key, stored) == 1, nil
}

func decodeHash(encoded string) (salt, key []byte, err error) {
	parts := strings.Split(encoded, hashSeparator)
	if len(parts) != 2 {
		return nil, nil, domainerrors.ErrMalformedStoredHash.WrapMessage("expected exactly one separator")
	}

	salt, err = hex.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return nil, nil, domainerrors.ErrMalformedStoredHash.WrapMessage("salt segment is not hex")
	}

	key, err = hex.DecodeString(parts[1])
	if err != nil || len(key) == 0 {
		return nil, nil, domainerrors.ErrMalformedStoredHash.WrapMessage("hash segment is not hex")
	}

	return salt, key, nil
}
