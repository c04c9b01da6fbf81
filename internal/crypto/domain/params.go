package domain

import (
	"fmt"
)

// Params holds every input the pipeline needs to reproduce a key and run the cipher.
//
// The deployed configuration uses an empty passphrase, a constant salt, and a constant
// IV shared by every message. Identical plaintexts therefore always produce identical
// tokens, and the scheme provides obfuscation rather than confidentiality. Override the
// fields to move to per-deployment secrets or per-message IVs.
type Params struct {
	Passphrase []byte
	Salt       []byte
	IV         []byte
	Iterations int
	KeyLength  int
}

// DefaultParams returns the deployment constants. Each call returns fresh slices.
func DefaultParams() Params {
	return Params{
		Passphrase: []byte{},
		Salt:       DefaultSalt(),
		IV:         DefaultIV(),
		Iterations: DefaultIterations,
		KeyLength:  DefaultKeyLength,
	}
}

// Validate checks the derivation parameters and the IV size.
func (p Params) Validate() error {
	if len(p.Salt) == 0 {
		return ErrInvalidSalt
	}
	if p.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, p.Iterations)
	}
	if p.KeyLength < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidKeyLength, p.KeyLength)
	}
	if len(p.IV) != BlockSize {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidIVSize, len(p.IV))
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate shared slices. Nil slices stay
// nil and empty slices stay empty.
func (p Params) Clone() Params {
	return Params{
		Passphrase: cloneBytes(p.Passphrase),
		Salt:       cloneBytes(p.Salt),
		IV:         cloneBytes(p.IV),
		Iterations: p.Iterations,
		KeyLength:  p.KeyLength,
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
