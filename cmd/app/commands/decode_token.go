package commands

import (
	"context"
	"fmt"
	"log/slog"

	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
)

// DecodeResult pairs an input token with its plaintext.
type DecodeResult struct {
	Token     string `json:"token"`
	Plaintext string `json:"plaintext"`
}

// RunDecode decodes every input token and prints the plaintexts in input order.
// Failure handling follows RunEncode.
func RunDecode(
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

	logger.Debug("decoding tokens", slog.Int("count", len(inputs)), slog.Bool("silent", silent != nil))

	plaintexts := make([]string, len(inputs))
	if silent != nil {
		for i, token := range inputs {
			plaintexts[i] = silent.DecodeToken(ctx, token)
		}
	} else if len(inputs) > 0 {
		var err error
		plaintexts, err = useCase.DecodeBatch(ctx, inputs)
		if err != nil {
			return fmt.Errorf("failed to decode: %w", err)
		}
	}

	results := make([]DecodeResult, len(inputs))
	for i := range inputs {
		results[i] = DecodeResult{Token: inputs[i], Plaintext: plaintexts[i]}
	}

	return writeResults(io.Writer, format, results, func(r DecodeResult) string {
		return r.Plaintext
	})
}
