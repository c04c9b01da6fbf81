// Package service provides the token codec: base32hex packing plus the sentinel
// padding compaction that keeps tokens short.
package service

// Codec converts ciphertext bytes to a token string and back.
type Codec interface {
	// Encode returns the token for data. Empty data gives an empty token.
	Encode(data []byte) string

	// Decode returns the bytes a token stands for. An empty token gives empty bytes.
	Decode(token string) ([]byte, error)
}
