package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokencrypt/cmd/app/commands"
	"github.com/allisson/tokencrypt/internal/app"
	"github.com/allisson/tokencrypt/internal/config"
	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
)

func tokenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "Output format: 'text' or 'json'",
		},
		&cli.BoolFlag{
			Name:    "silent",
			Aliases: []string{"s"},
			Value:   false,
			Usage:   "Print an empty line for each failing input instead of aborting",
		},
	}
}

// tokenRunner is the signature shared by RunEncode and RunDecode.
type tokenRunner func(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	silent *tokenUseCase.SilentCodec,
	logger *slog.Logger,
	inputs []string,
	format string,
	io commands.IOTuple,
) error

func tokenAction(run tokenRunner) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg, app.WithLogWriter(os.Stderr))
		defer func() { _ = container.Shutdown(ctx) }()

		useCase, err := container.TokenUseCase()
		if err != nil {
			return err
		}

		var silent *tokenUseCase.SilentCodec
		if cmd.Bool("silent") {
			if silent, err = container.SilentCodec(); err != nil {
				return err
			}
		}

		stdio := commands.DefaultIO()
		inputs, err := commands.ReadInputs(cmd.Args().Slice(), stdio.Reader)
		if err != nil {
			return err
		}

		return run(ctx, useCase, silent, container.Logger(), inputs, cmd.String("format"), stdio)
	}
}

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode plaintexts into tokens (arguments, or one per stdin line)",
			ArgsUsage: "[plaintext...]",
			Flags:     tokenFlags(),
			Action:    tokenAction(commands.RunEncode),
		},
		{
			Name:      "decode",
			Usage:     "Decode tokens into plaintexts (arguments, or one per stdin line)",
			ArgsUsage: "[token...]",
			Flags:     tokenFlags(),
			Action:    tokenAction(commands.RunDecode),
		},
	}
}
