package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
)

// AESCBCCipher implements BlockCipher with AES-256 in CBC mode and PKCS#7 padding.
//
// Each call chains 16-byte blocks from the IV fixed at construction. Plaintext is
// padded to a whole number of blocks, so an n-byte input gives exactly 16*(n/16+1)
// bytes of ciphertext and never an empty one.
//
// Security properties:
//   - 256-bit key, derived per call by the caller and never stored here
//   - 16-byte IV copied at construction; the deployed IV is a constant shared by
//     every message, so equal plaintexts give equal ciphertexts and common
//     prefixes leak
//   - No authentication tag: a tampered ciphertext is only caught when its
//     padding happens to be invalid
//   - Padding is checked in constant time over the padding bytes
//
// Treat the output as obfuscated, not confidential.
//
// Thread safety:
//
//	The cipher holds no mutable state after construction and is safe for concurrent
//	use from multiple goroutines.
//
// Example usage:
//
//	c, err := NewAESCBC(key, iv)
//	if err != nil {
//	    return err
//	}
//	ciphertext, err := c.Encrypt([]byte("Hello"))
//	plaintext, err := c.Decrypt(ciphertext)
type AESCBCCipher struct {
	block cipher.Block
	iv    []byte
}

// NewAESCBC creates an AES-256-CBC cipher. key must be 32 bytes and iv 16 bytes.
func NewAESCBC(key, iv []byte) (*AESCBCCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", cryptoDomain.ErrInvalidKeySize, cryptoDomain.KeySize, len(key))
	}
	if len(iv) != cryptoDomain.BlockSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", cryptoDomain.ErrInvalidIVSize, cryptoDomain.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return &AESCBCCipher{
		block: block,
		iv:    append([]byte(nil), iv...),
	}, nil
}

// NewAESCBCBlockCipher adapts NewAESCBC to CipherFactory.
func NewAESCBCBlockCipher(key, iv []byte) (BlockCipher, error) {
	return NewAESCBC(key, iv)
}

// Encrypt pads plaintext with PKCS#7 and encrypts it. The output is always at least
// one block long, even for empty input.
func (a *AESCBCCipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, cryptoDomain.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(a.block, a.iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt decrypts ciphertext and strips its PKCS#7 padding.
func (a *AESCBCCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%cryptoDomain.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", cryptoDomain.ErrInvalidCiphertextLength, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(a.block, a.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, cryptoDomain.BlockSize)
	if err != nil {
		cryptoDomain.Zero(plaintext)
		return nil, err
	}
	return unpadded, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, cryptoDomain.ErrInvalidPadding
	}

	expected := bytes.Repeat([]byte{byte(padding)}, padding)
	if subtle.ConstantTimeCompare(data[len(data)-padding:], expected) != 1 {
		return nil, cryptoDomain.ErrInvalidPadding
	}
	return data[:len(data)-padding], nil
}
