package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/tokencrypt/internal/crypto/service"
	apperrors "github.com/allisson/tokencrypt/internal/errors"
	tokenDomain "github.com/allisson/tokencrypt/internal/token/domain"
	tokenService "github.com/allisson/tokencrypt/internal/token/service"
)

// DefaultBatchConcurrency bounds how many items a batch processes at once.
const DefaultBatchConcurrency = 8

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	params           cryptoDomain.Params
	keyDeriver       cryptoService.KeyDeriver
	newCipher        cryptoService.CipherFactory
	codec            tokenService.Codec
	batchConcurrency int
}

// NewTokenUseCase creates the pipeline. params is copied and validated up front so a
// bad configuration fails at startup rather than on the first request.
// batchConcurrency < 1 selects DefaultBatchConcurrency.
func NewTokenUseCase(
	params cryptoDomain.Params,
	keyDeriver cryptoService.KeyDeriver,
	newCipher cryptoService.CipherFactory,
	codec tokenService.Codec,
	batchConcurrency int,
) (TokenUseCase, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid token parameters: %w", err)
	}
	if batchConcurrency < 1 {
		batchConcurrency = DefaultBatchConcurrency
	}

	return &tokenUseCase{
		params:           params.Clone(),
		keyDeriver:       keyDeriver,
		newCipher:        newCipher,
		codec:            codec,
		batchConcurrency: batchConcurrency,
	}, nil
}

// NewDefaultTokenUseCase wires PBKDF2-HMAC-SHA1, AES-256-CBC, and the base32hex codec.
func NewDefaultTokenUseCase(params cryptoDomain.Params, batchConcurrency int) (TokenUseCase, error) {
	return NewTokenUseCase(
		params,
		cryptoService.NewPBKDF2SHA1Deriver(),
		cryptoService.NewAESCBCBlockCipher,
		tokenService.NewBase32HexCodec(),
		batchConcurrency,
	)
}

// Encode encrypts plaintext and encodes the ciphertext as a token.
func (t *tokenUseCase) Encode(ctx context.Context, plaintext string) (string, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}
	if plaintext == "" {
		return "", nil
	}
	if !utf8.ValidString(plaintext) {
		return "", tokenDomain.ErrInvalidPlaintextEncoding
	}

	blockCipher, err := t.cipher()
	if err != nil {
		return "", err
	}

	ciphertext, err := blockCipher.Encrypt([]byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt plaintext: %w", err)
	}

	return t.codec.Encode(ciphertext), nil
}

// Decode decodes token and decrypts the ciphertext it carries.
func (t *tokenUseCase) Decode(ctx context.Context, token string) (string, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}

	ciphertext, err := t.codec.Decode(token)
	if err != nil {
		return "", fmt.Errorf("failed to decode token: %w", err)
	}
	if len(ciphertext) == 0 {
		return "", nil
	}

	blockCipher, err := t.cipher()
	if err != nil {
		return "", err
	}

	plaintext, err := blockCipher.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", tokenDomain.ErrInvalidPlaintextEncoding
	}
	return string(plaintext), nil
}

// EncodeBatch encodes plaintexts with bounded concurrency.
func (t *tokenUseCase) EncodeBatch(ctx context.Context, plaintexts []string) ([]string, error) {
	return t.batch(ctx, plaintexts, t.Encode)
}

// DecodeBatch decodes tokens with bounded concurrency.
func (t *tokenUseCase) DecodeBatch(ctx context.Context, tokens []string) ([]string, error) {
	return t.batch(ctx, tokens, t.Decode)
}

func (t *tokenUseCase) batch(
	ctx context.Context,
	inputs []string,
	fn func(context.Context, string) (string, error),
) ([]string, error) {
	results := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.batchConcurrency)

	for i, input := range inputs {
		g.Go(func() error {
			out, err := fn(gctx, input)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// cipher derives the key for this call and builds a cipher from it. The key bytes
// are wiped before returning; the cipher keeps only its expanded schedule.
func (t *tokenUseCase) cipher() (cryptoService.BlockCipher, error) {
	key, err := t.keyDeriver.DeriveKey(t.params.Passphrase, t.params.Salt, t.params.Iterations, t.params.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	blockCipher, err := t.newCipher(key, t.params.IV)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return blockCipher, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrCanceled, err)
	}
	return nil
}
