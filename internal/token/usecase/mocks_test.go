package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// mockTokenUseCase is a mock implementation of TokenUseCase for testing.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Encode(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

func (m *mockTokenUseCase) Decode(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockTokenUseCase) EncodeBatch(ctx context.Context, plaintexts []string) ([]string, error) {
	args := m.Called(ctx, plaintexts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockTokenUseCase) DecodeBatch(ctx context.Context, tokens []string) ([]string, error) {
	args := m.Called(ctx, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// mockKeyDeriver is a mock implementation of cryptoService.KeyDeriver for testing.
type mockKeyDeriver struct {
	mock.Mock
}

func (m *mockKeyDeriver) DeriveKey(passphrase, salt []byte, iterations, keyLength int) ([]byte, error) {
	args := m.Called(passphrase, salt, iterations, keyLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
