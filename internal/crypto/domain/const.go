package domain

// Algorithm names the cipher suite used by the pipeline.
type Algorithm string

const (
	// AES256CBC is AES with a 256-bit key in cipher-block-chaining mode with PKCS#7 padding,
	// keyed by PBKDF2-HMAC-SHA1.
	AES256CBC Algorithm = "aes-256-cbc"
)

const (
	// BlockSize is the AES block size in bytes. The IV has the same length.
	BlockSize = 16

	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// DefaultIterations is the deployed PBKDF2 iteration count.
	//
	// The value is far below modern guidance. It is kept as-is because every token
	// issued so far was produced with it.
	DefaultIterations = 20

	// DefaultKeyLength is the deployed derived key length in bytes.
	DefaultKeyLength = KeySize
)

var (
	defaultSalt = []byte{0x28, 0xAB, 0xBC, 0xCD, 0xDE, 0xEF, 0x00, 0x33}
	defaultIV   = []byte{
		0x37, 0x36, 0x35, 0x34, 0x33, 0x32, 0x31, 0x30,
		0x2F, 0x2E, 0x2D, 0x2C, 0x2B, 0x2A, 0x29, 0x28,
	}
)

// DefaultSalt returns a copy of the deployed 8-byte PBKDF2 salt.
func DefaultSalt() []byte {
	return append([]byte(nil), defaultSalt...)
}

// DefaultIV returns a copy of the deployed 16-byte CBC initialization vector.
func DefaultIV() []byte {
	return append([]byte(nil), defaultIV...)
}
