package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
)

// deployedKeyHex is PBKDF2-HMAC-SHA1("", 28ABBCCDDEEF0033, 20, 32).
const deployedKeyHex = "8b0677886d1ff558c533363ecfb519dfe8111f800fee7728aca31958fe9f569a"

func TestPBKDF2SHA1Deriver_DeriveKey(t *testing.T) {
	deriver := NewPBKDF2SHA1Deriver()

	tests := []struct {
		name       string
		passphrase []byte
		salt       []byte
		iterations int
		keyLength  int
		expected   string
	}{
		{
			name:       "RFC6070_OneIteration",
			passphrase: []byte("password"),
			salt:       []byte("salt"),
			iterations: 1,
			keyLength:  20,
			expected:   "0c60c80f961f0e71f3a9b524af6012062fe037a6",
		},
		{
			name:       "RFC6070_TwoIterations",
			passphrase: []byte("password"),
			salt:       []byte("salt"),
			iterations: 2,
			keyLength:  20,
			expected:   "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957",
		},
		{
			name:       "RFC6070_4096Iterations",
			passphrase: []byte("password"),
			salt:       []byte("salt"),
			iterations: 4096,
			keyLength:  20,
			expected:   "4b007901b765489abead49d926f721d065a429c1",
		},
		{
			name:       "DeployedParameters",
			passphrase: []byte{},
			salt:       cryptoDomain.DefaultSalt(),
			iterations: cryptoDomain.DefaultIterations,
			keyLength:  cryptoDomain.DefaultKeyLength,
			expected:   deployedKeyHex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := deriver.DeriveKey(tt.passphrase, tt.salt, tt.iterations, tt.keyLength)
			require.NoError(t, err)
			assert.Len(t, key, tt.keyLength)
			assert.Equal(t, tt.expected, hex.EncodeToString(key))
		})
	}
}

func TestPBKDF2SHA1Deriver_Deterministic(t *testing.T) {
	deriver := NewPBKDF2SHA1Deriver()

	key1, err := deriver.DeriveKey([]byte("secret"), cryptoDomain.DefaultSalt(), 20, 32)
	require.NoError(t, err)
	key2, err := deriver.DeriveKey([]byte("secret"), cryptoDomain.DefaultSalt(), 20, 32)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	other, err := deriver.DeriveKey([]byte("other"), cryptoDomain.DefaultSalt(), 20, 32)
	require.NoError(t, err)
	assert.NotEqual(t, key1, other)
}

func TestPBKDF2SHA1Deriver_InvalidParameters(t *testing.T) {
	deriver := NewPBKDF2SHA1Deriver()

	tests := []struct {
		name        string
		salt        []byte
		iterations  int
		keyLength   int
		expectedErr error
	}{
		{"Error_EmptySalt", nil, 20, 32, cryptoDomain.ErrInvalidSalt},
		{"Error_ZeroIterations", cryptoDomain.DefaultSalt(), 0, 32, cryptoDomain.ErrInvalidIterations},
		{"Error_NegativeIterations", cryptoDomain.DefaultSalt(), -5, 32, cryptoDomain.ErrInvalidIterations},
		{"Error_ZeroKeyLength", cryptoDomain.DefaultSalt(), 20, 0, cryptoDomain.ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := deriver.DeriveKey(nil, tt.salt, tt.iterations, tt.keyLength)
			assert.Nil(t, key)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, cryptoDomain.ErrDerivationFailed)
		})
	}
}
