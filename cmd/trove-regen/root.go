package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ucodery/trove-classifiers/pkg/version"
)

var Version = version.String()

func regenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "regen.toml", Usage: "config file path (optional)"},
		&cli.StringFlag{Name: "artifact", Aliases: []string{"a"}, Value: "", Usage: "artifact path (overrides config)"},
		&cli.StringFlag{Name: "dataset", Aliases: []string{"d"}, Value: "", Usage: "dataset snapshot path (overrides config)"},
		&cli.StringFlag{Name: "profile", Aliases: []string{"p"}, Value: "", Usage: "artifact profile: go or rust (overrides config)"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Value: false, Usage: "print run events"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Value: false, Usage: "suppress output"},
	}
}

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "trove-regen",
		Usage: "Keep the generated classifier enumeration in sync with PyPA",
		// A bare invocation performs one full regeneration with defaults.
		Flags: regenFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Regen(ctx, cmd)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("trove-regen version %s\n", Version)
					return nil
				},
			},
			{
				Name:  "regen",
				Usage: "Regenerate the artifact from the dataset snapshot",
				Flags: regenFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Regen(ctx, cmd)
				},
			},
			{
				Name:  "fetch",
				Usage: "Refresh the dataset snapshot from PyPI",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "regen.toml", Usage: "config file path (optional)"},
					&cli.StringFlag{Name: "dataset", Aliases: []string{"d"}, Value: "", Usage: "dataset snapshot path (overrides config)"},
					&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "HTTP timeout"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Fetch(ctx, cmd)
				},
			},
			{
				Name:  "watch",
				Usage: "Watch the dataset snapshot and regenerate on change",
				Flags: append(regenFlags(),
					&cli.DurationFlag{Name: "debounce", Value: 250 * time.Millisecond, Usage: "Debounce window for regeneration"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Watch(ctx, cmd)
				},
			},
		},
	}

	return app.Run(ctx, args)
}
