package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ucodery/trove-classifiers/cmd/trove-regen/internal"
	"github.com/ucodery/trove-classifiers/pkg/taxonomy"
	"github.com/ucodery/trove-classifiers/pkg/utils/fileutils"
)

// Fetch refreshes the local dataset snapshot from upstream. The snapshot
// is replaced atomically, so an interrupted fetch leaves the previous
// snapshot in place.
func Fetch(ctx context.Context, cmd *cli.Command) error {
	runner, err := internal.NewRunnerWithOverrides(cmd.String("config"), "", cmd.String("dataset"), "")
	if err != nil {
		return err
	}
	path := runner.Config().Dataset.Path

	client := &http.Client{Timeout: cmd.Duration("timeout")}
	ds, err := taxonomy.Fetch(ctx, client)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	err = fileutils.AtomicWrite(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	})
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Printf("OK  fetched pypa %s (%d classifiers) -> %s\n", ds.Version, len(ds.Classifiers), path)

	return nil
}
