package domain

import (
	"github.com/allisson/tokencrypt/internal/errors"
)

// Key derivation failures. These come from configuration, not from callers, so they
// do not wrap errors.ErrInvalidInput and surface as internal errors.
var (
	// ErrDerivationFailed indicates PBKDF2 could not produce a key.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrInvalidSalt indicates the salt is missing.
	ErrInvalidSalt = errors.Wrap(ErrDerivationFailed, "salt must not be empty")

	// ErrInvalidIterations indicates a non-positive iteration count.
	ErrInvalidIterations = errors.Wrap(ErrDerivationFailed, "iterations must be at least 1")

	// ErrInvalidKeyLength indicates a non-positive output length was requested.
	ErrInvalidKeyLength = errors.Wrap(ErrDerivationFailed, "key length must be at least 1")
)

// Block cipher failures.
var (
	// ErrInvalidKeySize indicates the key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize indicates the IV is not exactly one block.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrInvalidCiphertextLength indicates the ciphertext is empty or not a whole
	// number of blocks.
	ErrInvalidCiphertextLength = errors.Wrap(errors.ErrInvalidInput, "invalid ciphertext length")

	// ErrInvalidPadding indicates the final block does not carry valid PKCS#7 padding,
	// which usually means a wrong key or a corrupted token.
	ErrInvalidPadding = errors.Wrap(errors.ErrInvalidInput, "invalid padding")
)
