package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	profileKey = "profile"
	renderKey  = "render"
)

func main() {
	cmd := &cli.Command{
		Name:  "bench",
		Usage: "Measure change propagation through glue observables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file overriding the benchmark matrix",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.BoolFlag{
				Name:  renderKey,
				Usage: "Print the result tables",
				Value: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "propagate",
				Usage:  "Chains of computeds hanging off a single source",
				Action: withProfile(runPropagate),
			},
			{
				Name:   "dynamic",
				Usage:  "Layered graphs of static and branching computeds",
				Action: withProfile(runDynamic),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func withProfile(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(profileKey)
		if path == "" {
			return action(ctx, cmd)
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		return action(ctx, cmd)
	}
}
