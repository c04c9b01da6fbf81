package service

import (
	"encoding/base32"
	"fmt"
	"strings"

	tokenDomain "github.com/allisson/tokencrypt/internal/token/domain"
)

// Base32HexCodec implements Codec with RFC 4648 base32hex and sentinel padding.
//
// Bytes are packed into 5-bit groups, most significant bit first, and padded to a
// multiple of 8 characters before CompactPadding runs.
//
// Encoding:
//   - Alphabet 0-9A-V, so tokens are URL-safe and sort like the bytes they encode
//   - Trailing "=" runs become sentinels (Z, Y, X, W), longest first
//   - Empty input gives an empty token
//
// Decoding:
//   - Surrounding whitespace is trimmed and lower case is accepted
//   - Any character outside the alphabet is rejected with its offset
//   - With sentinels expanded, the length must be a multiple of 8
//   - The result must re-encode to the normalized input, which rejects tokens that
//     differ only in the discarded low bits of the last symbol
//
// Thread safety:
//
//	The codec is immutable and safe for concurrent use.
type Base32HexCodec struct {
	encoding *base32.Encoding
}

// NewBase32HexCodec creates a new base32hex token codec.
func NewBase32HexCodec() *Base32HexCodec {
	return &Base32HexCodec{
		encoding: base32.NewEncoding(tokenDomain.Alphabet).WithPadding(tokenDomain.PadChar),
	}
}

// Encode returns the compacted base32hex token for data.
func (c *Base32HexCodec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return CompactPadding(c.encoding.EncodeToString(data))
}

// Decode validates token and returns the bytes it encodes.
func (c *Base32HexCodec) Decode(token string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if normalized == "" {
		return []byte{}, nil
	}

	data, pad := splitSentinels(normalized)
	for i := 0; i < len(data); i++ {
		if !tokenDomain.IsAlphabetChar(data[i]) {
			return nil, fmt.Errorf("%w: %q at offset %d", tokenDomain.ErrInvalidTokenCharacter, data[i], i)
		}
	}

	if (len(data)+pad)%tokenDomain.QuantumSize != 0 {
		return nil, fmt.Errorf("%w: %d characters after expansion", tokenDomain.ErrInvalidTokenLength, len(data)+pad)
	}

	decoded, err := c.encoding.DecodeString(data + strings.Repeat(string(tokenDomain.PadChar), pad))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tokenDomain.ErrMalformedPadding, err)
	}

	// base32 ignores the low bits of the last symbol; require them to be zero.
	if c.Encode(decoded) != normalized {
		return nil, tokenDomain.ErrNonCanonicalToken
	}
	return decoded, nil
}
