package usecase

import (
	"context"
)

// TokenUseCase defines the text-to-token pipeline operations.
//
// Every method is stateless; any number of calls may run concurrently.
type TokenUseCase interface {
	// Encode encrypts plaintext and returns its token. Empty plaintext gives an empty token.
	Encode(ctx context.Context, plaintext string) (string, error)

	// Decode reverses Encode. An empty token gives empty plaintext.
	Decode(ctx context.Context, token string) (string, error)

	// EncodeBatch encodes every plaintext, returning tokens in input order.
	// The first failure cancels the remaining work and is returned.
	EncodeBatch(ctx context.Context, plaintexts []string) ([]string, error)

	// DecodeBatch decodes every token, returning plaintexts in input order.
	DecodeBatch(ctx context.Context, tokens []string) ([]string, error)
}
