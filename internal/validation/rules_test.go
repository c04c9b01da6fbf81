package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tokencrypt/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "valid text", value: "Hello", shouldErr: false},
		{name: "text with inner spaces", value: "hello world", shouldErr: false},
		{name: "spaces only", value: "   ", shouldErr: true},
		{name: "tabs and newlines", value: "\t\n", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, NotBlank)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "must not be blank")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidUTF8(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "ascii", value: "Hello", shouldErr: false},
		{name: "multi-byte", value: "héllo wörld ✓", shouldErr: false},
		{name: "truncated sequence", value: "h\xc3", shouldErr: true},
		{name: "invalid byte", value: "\xff\xfe", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, ValidUTF8)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "UTF-8")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenCharset(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "fixture token", value: "OLMURU99A63PTIBMH2VDTVJ18SZX", shouldErr: false},
		{name: "lower case", value: "olmuru99a63ptibmh2vdtvj18szx", shouldErr: false},
		{name: "no sentinels", value: "CPNMUOJ1", shouldErr: false},
		{name: "surrounding whitespace", value: "  CPNMUY\n", shouldErr: false},
		{name: "character outside alphabet", value: "CPN!UOJ1", shouldErr: true},
		{name: "raw padding", value: "CO======", shouldErr: true},
		{name: "sentinel before data", value: "CZOX", shouldErr: true},
		{name: "inner whitespace", value: "CPN MUY", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, TokenCharset)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "must contain only")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("token: must not be blank."))

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "token: must not be blank.")
	})
}
