package domain

import (
	"github.com/allisson/tokencrypt/internal/errors"
)

// Codec and encoding errors. All are caused by caller input and wrap errors.ErrInvalidInput.
var (
	// ErrInvalidTokenLength indicates the token, with sentinels expanded, is not a
	// whole number of 8-character groups.
	ErrInvalidTokenLength = errors.Wrap(errors.ErrInvalidInput, "invalid token length")

	// ErrInvalidTokenCharacter indicates a character outside 0-9A-V, or a sentinel
	// letter somewhere other than the end.
	ErrInvalidTokenCharacter = errors.Wrap(errors.ErrInvalidInput, "invalid token character")

	// ErrMalformedPadding indicates the trailing sentinels expand to an amount of
	// padding base32hex never produces.
	ErrMalformedPadding = errors.Wrap(errors.ErrInvalidInput, "malformed token padding")

	// ErrNonCanonicalToken indicates the token decodes but is not the form the encoder
	// would emit, e.g. non-zero discarded trailing bits.
	ErrNonCanonicalToken = errors.Wrap(errors.ErrInvalidInput, "non-canonical token")

	// ErrInvalidPlaintextEncoding indicates plaintext that is not valid UTF-8, either
	// given to the encoder or recovered by the decoder.
	ErrInvalidPlaintextEncoding = errors.Wrap(errors.ErrInvalidInput, "plaintext is not valid UTF-8")
)
