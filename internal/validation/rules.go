// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tokencrypt/internal/errors"
)

// tokenRegex accepts base32hex data characters followed by an optional trailing run
// of padding sentinels, in either case. Surrounding whitespace is tolerated because
// the codec trims it.
var tokenRegex = regexp.MustCompile(`^\s*[0-9A-Va-v]*[W-Zw-z]*\s*$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ValidUTF8 validates that a string holds well-formed UTF-8.
var ValidUTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8 text"),
)

// TokenCharset validates the token alphabet and sentinel placement. It is a cheap
// pre-check; the codec still performs the authoritative length and canonical checks.
var TokenCharset = validation.NewStringRuleWithError(
	tokenRegex.MatchString,
	validation.NewError(
		"validation_token_charset",
		"must contain only 0-9 and A-V, optionally followed by padding sentinels W-Z",
	),
)
