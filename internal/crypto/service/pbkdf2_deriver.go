package service

import (
	"crypto/sha1" //nolint:gosec // PBKDF2-HMAC-SHA1 is fixed by the token format
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
)

// PBKDF2SHA1Deriver implements KeyDeriver with PBKDF2 using HMAC-SHA1 as the PRF.
//
// The PRF choice is fixed: changing it would make every previously issued token
// undecodable. The deriver is stateless and safe for concurrent use.
type PBKDF2SHA1Deriver struct{}

// NewPBKDF2SHA1Deriver creates a new PBKDF2-HMAC-SHA1 key deriver.
func NewPBKDF2SHA1Deriver() *PBKDF2SHA1Deriver {
	return &PBKDF2SHA1Deriver{}
}

// DeriveKey derives keyLength bytes from passphrase and salt.
//
// The passphrase may be empty. The salt must not be, and both iterations and
// keyLength must be positive.
func (d *PBKDF2SHA1Deriver) DeriveKey(passphrase, salt []byte, iterations, keyLength int) ([]byte, error) {
	if len(salt) == 0 {
		return nil, cryptoDomain.ErrInvalidSalt
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", cryptoDomain.ErrInvalidIterations, iterations)
	}
	if keyLength < 1 {
		return nil, fmt.Errorf("%w: got %d", cryptoDomain.ErrInvalidKeyLength, keyLength)
	}

	key := pbkdf2.Key(passphrase, salt, iterations, keyLength, sha1.New)
	if len(key) != keyLength {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("%w: short output", cryptoDomain.ErrDerivationFailed)
	}
	return key, nil
}
