package commands

import (
	"context"
	"fmt"
	"log/slog"

	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
)

// EncodeResult pairs an input plaintext with its token.
type EncodeResult struct {
	Plaintext string `json:"plaintext"`
	Token     string `json:"token"`
}

// RunEncode encodes every input and prints the tokens in input order.
//
// With a non-nil silent codec each failing input yields an empty token and the run
// continues; otherwise the whole batch is encoded at once and the first failure aborts
// the command.
func RunEncode(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	silent *tokenUseCase.SilentCodec,
	logger *slog.Logger,
	inputs []string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Debug("encoding tokens", slog.Int("count", len(inputs)), slog.Bool("silent", silent != nil))

	tokens := make([]string, len(inputs))
	if silent != nil {
		for i, plaintext := range inputs {
			tokens[i] = silent.EncodeToken(ctx, plaintext)
		}
	} else if len(inputs) > 0 {
		var err error
		tokens, err = useCase.EncodeBatch(ctx, inputs)
		if err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}
	}

	results := make([]EncodeResult, len(inputs))
	for i := range inputs {
		results[i] = EncodeResult{Plaintext: inputs[i], Token: tokens[i]}
	}

	return writeResults(io.Writer, format, results, func(r EncodeResult) string {
		return r.Token
	})
}
