package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tokencrypt/internal/errors"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.Empty(t, p.Passphrase)
	assert.Equal(t, []byte{0x28, 0xAB, 0xBC, 0xCD, 0xDE, 0xEF, 0x00, 0x33}, p.Salt)
	assert.Equal(t, []byte("76543210/.-,+*)("), p.IV)
	assert.Equal(t, 20, p.Iterations)
	assert.Equal(t, 32, p.KeyLength)
	require.NoError(t, p.Validate())
}

func TestDefaultParams_ReturnsFreshSlices(t *testing.T) {
	p := DefaultParams()
	p.Salt[0] = 0xFF
	p.IV[0] = 0xFF

	fresh := DefaultParams()
	assert.Equal(t, byte(0x28), fresh.Salt[0])
	assert.Equal(t, byte(0x37), fresh.IV[0])
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(p *Params)
		expectedErr error
	}{
		{
			name:   "Success_ArbitraryPassphrase",
			mutate: func(p *Params) { p.Passphrase = []byte("correct horse battery staple") },
		},
		{
			name:        "Error_EmptySalt",
			mutate:      func(p *Params) { p.Salt = nil },
			expectedErr: ErrInvalidSalt,
		},
		{
			name:        "Error_ZeroIterations",
			mutate:      func(p *Params) { p.Iterations = 0 },
			expectedErr: ErrInvalidIterations,
		},
		{
			name:        "Error_ZeroKeyLength",
			mutate:      func(p *Params) { p.KeyLength = 0 },
			expectedErr: ErrInvalidKeyLength,
		},
		{
			name:        "Error_ShortIV",
			mutate:      func(p *Params) { p.IV = p.IV[:8] },
			expectedErr: ErrInvalidIVSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestParams_DerivationErrorsAreNotClientErrors(t *testing.T) {
	for _, err := range []error{ErrInvalidSalt, ErrInvalidIterations, ErrInvalidKeyLength} {
		assert.ErrorIs(t, err, ErrDerivationFailed)
		assert.False(t, errors.Is(err, errors.ErrInvalidInput))
	}
	assert.ErrorIs(t, ErrInvalidPadding, errors.ErrInvalidInput)
	assert.ErrorIs(t, ErrInvalidCiphertextLength, errors.ErrInvalidInput)
}

func TestParams_Clone(t *testing.T) {
	p := DefaultParams()
	c := p.Clone()
	c.Salt[0] = 0x00
	c.IV[0] = 0x00

	assert.Equal(t, byte(0x28), p.Salt[0])
	assert.Equal(t, byte(0x37), p.IV[0])
	assert.Equal(t, p.Iterations, c.Iterations)
	assert.Equal(t, p.KeyLength, c.KeyLength)
}

func TestParams_Clone_PreservesEmptyAndNil(t *testing.T) {
	t.Run("empty passphrase stays non-nil", func(t *testing.T) {
		c := DefaultParams().Clone()
		assert.NotNil(t, c.Passphrase)
		assert.Empty(t, c.Passphrase)
	})

	t.Run("nil passphrase stays nil", func(t *testing.T) {
		p := DefaultParams()
		p.Passphrase = nil
		assert.Nil(t, p.Clone().Passphrase)
	})

	t.Run("passphrase is copied", func(t *testing.T) {
		p := DefaultParams()
		p.Passphrase = []byte("secret")
		c := p.Clone()
		c.Passphrase[0] = 'S'
		assert.Equal(t, []byte("secret"), p.Passphrase)
	})
}
