package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tokencrypt/internal/errors"
	tokenDomain "github.com/allisson/tokencrypt/internal/token/domain"
)

// rfc4648Vectors are the RFC 4648 section 10 base32hex vectors after padding compaction.
var rfc4648Vectors = []struct {
	input string
	token string
}{
	{"", ""},
	{"f", "COZX"},
	{"fo", "CPNGZ"},
	{"foo", "CPNMUY"},
	{"foob", "CPNMUOGW"},
	{"fooba", "CPNMUOJ1"},
	{"foobar", "CPNMUOJ1E8ZX"},
}

func TestBase32HexCodec_Encode(t *testing.T) {
	codec := NewBase32HexCodec()

	for _, tt := range rfc4648Vectors {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.token, codec.Encode([]byte(tt.input)))
		})
	}

	t.Run("nil input", func(t *testing.T) {
		assert.Equal(t, "", codec.Encode(nil))
	})
}

func TestBase32HexCodec_Decode(t *testing.T) {
	codec := NewBase32HexCodec()

	for _, tt := range rfc4648Vectors {
		t.Run(tt.input, func(t *testing.T) {
			decoded, err := codec.Decode(tt.token)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.input), decoded)
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		decoded, err := codec.Decode("cpnmuoj1e8zx")
		require.NoError(t, err)
		assert.Equal(t, []byte("foobar"), decoded)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		decoded, err := codec.Decode("  CPNMUY\n")
		require.NoError(t, err)
		assert.Equal(t, []byte("foo"), decoded)
	})

	t.Run("empty and blank", func(t *testing.T) {
		for _, token := range []string{"", "   "} {
			decoded, err := codec.Decode(token)
			require.NoError(t, err)
			assert.Empty(t, decoded)
			assert.NotNil(t, decoded)
		}
	})
}

func TestBase32HexCodec_Sentinels(t *testing.T) {
	codec := NewBase32HexCodec()

	expected := map[int]string{
		1: "ZX",
		2: "Z",
		3: "Y",
		4: "W",
		5: "",
	}

	for n, suffix := range expected {
		token := codec.Encode([]byte(strings.Repeat("\xA5", n)))
		dataLen := len(strings.TrimRight(token, "WXYZ"))

		assert.Equal(t, suffix, token[dataLen:], "input length %d", n)
	}
}

func TestBase32HexCodec_TokenShape(t *testing.T) {
	codec := NewBase32HexCodec()

	for n := 1; n <= 80; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*37 + n)
		}

		token := codec.Encode(data)
		assert.Zero(t, len(ExpandPadding(token))%tokenDomain.QuantumSize, "length %d", n)
		assert.NotContains(t, token, "=")

		body, _ := splitSentinels(token)
		for i := 0; i < len(body); i++ {
			assert.True(t, tokenDomain.IsAlphabetChar(body[i]))
		}

		decoded, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestBase32HexCodec_Ordering(t *testing.T) {
	codec := NewBase32HexCodec()

	a := codec.Encode([]byte{0x00, 0x10, 0x20, 0x30, 0x40})
	b := codec.Encode([]byte{0x00, 0x10, 0x20, 0x30, 0x41})
	c := codec.Encode([]byte{0xFF, 0x00, 0x00, 0x00, 0x00})

	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestBase32HexCodec_DecodeErrors(t *testing.T) {
	codec := NewBase32HexCodec()

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{"Error_RawPadding", "CO======", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_OutsideAlphabet", "C!ZX", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_Hyphen", "CPNM-OJ1", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_SentinelInData", "CZOX", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_EmbeddedNewline", "CPNM\nOJ1", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_NonASCII", "CPNMUOé1", tokenDomain.ErrInvalidTokenCharacter},
		{"Error_ShortGroup", "CO", tokenDomain.ErrInvalidTokenLength},
		{"Error_LongGroup", "CPNMUOJ1E", tokenDomain.ErrInvalidTokenLength},
		{"Error_WrongSentinelCount", "COY", tokenDomain.ErrInvalidTokenLength},
		{"Error_SentinelsOnly", "ZX", tokenDomain.ErrInvalidTokenLength},
		{"Error_ImpossiblePadRun", "CPNMUOX", tokenDomain.ErrMalformedPadding},
		{"Error_AllPadding", "ZZ", tokenDomain.ErrMalformedPadding},
		{"Error_SentinelOrder", "COXZ", tokenDomain.ErrNonCanonicalToken},
		{"Error_TrailingBitsSet", "CPZX", tokenDomain.ErrNonCanonicalToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := codec.Decode(tt.token)
			assert.Nil(t, decoded)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput))
		})
	}
}

func TestBase32HexCodec_DecodeErrorReportsOffset(t *testing.T) {
	codec := NewBase32HexCodec()

	_, err := codec.Decode("CPNM!OJ1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'!' at offset 4`)
}
