// Package service provides the cryptographic stages of the token pipeline:
// PBKDF2-HMAC-SHA1 key derivation and AES-256-CBC block encryption.
package service

// KeyDeriver stretches a passphrase and salt into a fixed-length symmetric key.
type KeyDeriver interface {
	// DeriveKey returns keyLength bytes derived from passphrase and salt.
	// It never returns a key together with an error.
	DeriveKey(passphrase, salt []byte, iterations, keyLength int) ([]byte, error)
}

// BlockCipher encrypts and decrypts whole buffers, handling block padding itself.
type BlockCipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// CipherFactory builds a BlockCipher for a derived key and IV.
type CipherFactory func(key, iv []byte) (BlockCipher, error)
