package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/tokencrypt/internal/errors"
)

// SilentCodec exposes the pipeline with the empty-string-on-failure convention:
// failures are logged and never returned. Callers cannot tell an empty input from a
// failed one; use TokenUseCase directly when that distinction matters.
type SilentCodec struct {
	useCase TokenUseCase
	logger  *slog.Logger
}

// NewSilentCodec creates a SilentCodec over useCase.
func NewSilentCodec(useCase TokenUseCase, logger *slog.Logger) *SilentCodec {
	return &SilentCodec{
		useCase: useCase,
		logger:  logger,
	}
}

// EncodeToken returns the token for plaintext, or "" if plaintext is empty or encoding fails.
func (s *SilentCodec) EncodeToken(ctx context.Context, plaintext string) string {
	if plaintext == "" {
		s.logger.Debug("empty plaintext, returning empty token")
		return ""
	}

	token, err := s.useCase.Encode(ctx, plaintext)
	if err != nil {
		s.logFailure("token encode failed", err)
		return ""
	}
	return token
}

// DecodeToken returns the plaintext for token, or "" if decoding fails at any stage.
func (s *SilentCodec) DecodeToken(ctx context.Context, token string) string {
	plaintext, err := s.useCase.Decode(ctx, token)
	if err != nil {
		s.logFailure("token decode failed", err)
		return ""
	}
	return plaintext
}

// logFailure logs caller-caused failures at warn and everything else at error.
func (s *SilentCodec) logFailure(msg string, err error) {
	if apperrors.Is(err, apperrors.ErrInvalidInput) || apperrors.Is(err, apperrors.ErrCanceled) {
		s.logger.Warn(msg, slog.Any("error", err))
		return
	}
	s.logger.Error(msg, slog.Any("error", err))
}
