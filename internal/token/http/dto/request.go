// Package dto provides data transfer objects for the token HTTP endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tokencrypt/internal/validation"
)

const (
	// MaxPlaintextLength bounds a single plaintext in characters (runes), not bytes.
	MaxPlaintextLength = 64 * 1024

	// MaxBatchSize bounds the number of items in a batch request.
	MaxBatchSize = 100
)

// EncodeRequest contains the plaintext to turn into a token.
type EncodeRequest struct {
	Plaintext string `json:"plaintext"`
}

// Validate checks if the encode request is valid.
func (r *EncodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			validation.RuneLength(1, MaxPlaintextLength),
			customValidation.ValidUTF8,
		),
	)
}

// DecodeRequest contains the token to turn back into plaintext.
type DecodeRequest struct {
	Token string `json:"token"`
}

// Validate checks if the decode request is valid.
func (r *DecodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.TokenCharset,
		),
	)
}

// EncodeBatchRequest contains plaintexts encoded in one call.
type EncodeBatchRequest struct {
	Plaintexts []string `json:"plaintexts"`
}

// Validate checks if the batch encode request is valid.
func (r *EncodeBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintexts,
			validation.Required,
			validation.Length(1, MaxBatchSize),
			validation.Each(
				validation.Required,
				validation.RuneLength(1, MaxPlaintextLength),
				customValidation.ValidUTF8,
			),
		),
	)
}

// DecodeBatchRequest contains tokens decoded in one call.
type DecodeBatchRequest struct {
	Tokens []string `json:"tokens"`
}

// Validate checks if the batch decode request is valid.
func (r *DecodeBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Tokens,
			validation.Required,
			validation.Length(1, MaxBatchSize),
			validation.Each(
				validation.Required,
				customValidation.NotBlank,
				customValidation.TokenCharset,
			),
		),
	)
}
