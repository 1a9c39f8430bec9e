package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ucodery/trove-classifiers/cmd/trove-regen/internal"
	"github.com/ucodery/trove-classifiers/pkg/events"
)

// Regen performs a single regeneration of the artifact
func Regen(ctx context.Context, cmd *cli.Command) error {
	runner, err := internal.NewRunnerWithOverrides(
		cmd.String("config"),
		cmd.String("artifact"),
		cmd.String("dataset"),
		cmd.String("profile"),
	)
	if err != nil {
		return err
	}

	var handler events.Handler = events.NewNoopHandler()
	if cmd.Bool("verbose") && !cmd.Bool("quiet") {
		handler = newEventPrinter(eventOutputRich, os.Stderr)
	}

	result, err := runner.Run(ctx, handler)
	if err != nil {
		return fmt.Errorf("regeneration failed: %w", err)
	}

	if cmd.Bool("quiet") {
		return nil
	}

	if result.Changed {
		fmt.Printf("OK  regenerated %s in %s (pypa %s, %d classifiers)\n",
			runner.Config().Artifact.Path,
			result.Duration.Truncate(time.Millisecond),
			result.Version, result.Classifiers)
	} else {
		fmt.Printf("OK  %s already up to date (pypa %s)\n",
			runner.Config().Artifact.Path, result.Version)
	}

	return nil
}
