package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/delaneyj/uiglue/bind"
	"github.com/urfave/cli/v3"
)

const (
	verboseKey = "verbose"
	nameKey    = "name"
	shoutKey   = "shout"
	modalKey   = "modal"
	redKey     = "red"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Drive the example views on headless windows and print them",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  verboseKey,
				Usage: "Log skipped and failed bindings",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "hello",
				Usage: "Type a name into the greeting form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  nameKey,
						Usage: "Name to type",
						Value: "world",
					},
					&cli.BoolFlag{
						Name:  shoutKey,
						Usage: "Tick the shout check box",
					},
					&cli.BoolFlag{
						Name:  modalKey,
						Usage: "Press the modal button",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runHello(out, cmd)
				},
			},
			{
				Name:  "dialog",
				Usage: "Drag the red slider of the colour mixer",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  redKey,
						Usage: "Red share in hundredths of a percent",
						Value: 5000,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDialog(out, cmd)
				},
			},
		},
	}
}

func bindOptions(cmd *cli.Command) []bind.Option {
	level := slog.LevelWarn
	if cmd.Bool(verboseKey) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return []bind.Option{bind.WithLogger(logger)}
}
