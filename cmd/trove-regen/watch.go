package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ucodery/trove-classifiers/cmd/trove-regen/internal"
	"github.com/ucodery/trove-classifiers/pkg/events"
)

// Watch keeps regenerating the artifact whenever the dataset snapshot
// changes. Only the snapshot is watched; watching the artifact would
// loop on our own commits.
func Watch(ctx context.Context, cmd *cli.Command) error {
	runner, err := internal.NewRunnerWithOverrides(
		cmd.String("config"),
		cmd.String("artifact"),
		cmd.String("dataset"),
		cmd.String("profile"),
	)
	if err != nil {
		return err
	}

	watcher, err := internal.NewFileWatcher(
		[]string{runner.Config().Dataset.Path},
		cmd.Duration("debounce"),
	)
	if err != nil {
		return err
	}
	defer watcher.Close()

	eventCh, errorCh, err := watcher.Start(ctx)
	if err != nil {
		return err
	}

	log.Printf("trove-regen watching: %s", strings.Join(watcher.Paths(), ", "))

	runOnce := func(reason string) {
		result, err := runner.Run(ctx, events.NewNoopHandler())
		switch {
		case err != nil:
			log.Printf("ERR  regen failed (%s): %v", reason, err)
		case result.Changed:
			log.Printf("OK   regenerated in %s (%s) [pypa %s, %d classifiers]",
				result.Duration.Truncate(time.Millisecond), reason, result.Version, result.Classifiers)
		default:
			log.Printf("OK   up to date (%s) [pypa %s]", reason, result.Version)
		}
	}

	runOnce("startup")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event := <-eventCh:
				runOnce(event.Reason)
			case err := <-errorCh:
				log.Printf("%v", err)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
