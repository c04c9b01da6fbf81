package usecase

import (
	"context"
	"time"

	"github.com/allisson/tokencrypt/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encode records metrics for token encode operations.
func (t *tokenUseCaseWithMetrics) Encode(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	token, err := t.next.Encode(ctx, plaintext)
	t.record(ctx, "token_encode", start, err)
	return token, err
}

// Decode records metrics for token decode operations.
func (t *tokenUseCaseWithMetrics) Decode(ctx context.Context, token string) (string, error) {
	start := time.Now()
	plaintext, err := t.next.Decode(ctx, token)
	t.record(ctx, "token_decode", start, err)
	return plaintext, err
}

// EncodeBatch records metrics for batch encode operations.
func (t *tokenUseCaseWithMetrics) EncodeBatch(ctx context.Context, plaintexts []string) ([]string, error) {
	start := time.Now()
	tokens, err := t.next.EncodeBatch(ctx, plaintexts)
	t.record(ctx, "token_encode_batch", start, err)
	return tokens, err
}

// DecodeBatch records metrics for batch decode operations.
func (t *tokenUseCaseWithMetrics) DecodeBatch(ctx context.Context, tokens []string) ([]string, error) {
	start := time.Now()
	plaintexts, err := t.next.DecodeBatch(ctx, tokens)
	t.record(ctx, "token_decode_batch", start, err)
	return plaintexts, err
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	t.metrics.RecordOperation(ctx, "token", operation, status)
	t.metrics.RecordDuration(ctx, "token", operation, time.Since(start), status)
}
