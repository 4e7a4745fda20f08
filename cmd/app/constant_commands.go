package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/constguard/cmd/app/commands"
	"github.com/allisson/constguard/internal/app"
	"github.com/allisson/constguard/internal/config"
)

func getConstantCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "show",
			Usage: "Print every constant group and its decoded values",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "group",
					Aliases: []string{"g"},
					Usage:   "Only print this group",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				catalogUseCase, err := container.CatalogUseCase()
				if err != nil {
					return err
				}

				return commands.RunShow(
					ctx,
					catalogUseCase,
					commands.DefaultIO().Writer,
					cmd.String("group"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify",
			Usage: "Read every constant from concurrent readers and check they agree",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "readers",
					Aliases: []string{"r"},
					Usage:   "Number of concurrent readers (defaults to VERIFY_READERS)",
				},
				&cli.IntFlag{
					Name:    "reads",
					Aliases: []string{"n"},
					Usage:   "Reads per reader (defaults to VERIFY_READS)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				verifyUseCase, err := container.VerifyUseCase()
				if err != nil {
					return err
				}

				readers := cfg.VerifyReaders
				if cmd.IsSet("readers") {
					readers = int(cmd.Int("readers"))
				}
				reads := cfg.VerifyReads
				if cmd.IsSet("reads") {
					reads = int(cmd.Int("reads"))
				}

				return commands.RunVerify(
					ctx,
					verifyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					readers,
					reads,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate",
			Usage: "Seal the constants of a YAML manifest into generated Go source",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "manifest",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Path to the YAML manifest",
				},
				&cli.StringFlag{
					Name:     "out",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Path of the generated Go file",
				},
				&cli.StringFlag{
					Name:    "package",
					Aliases: []string{"p"},
					Usage:   "Override the package name declared by the manifest",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerate(
					cmd.String("manifest"),
					cmd.String("out"),
					cmd.String("package"),
					commands.DefaultIO().Writer,
				)
			},
		},
	}
}
