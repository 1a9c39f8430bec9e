package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ucodery/trove-classifiers/pkg/events"
	"github.com/ucodery/trove-classifiers/pkg/regen"
)

// Runner resolves configuration once and performs regeneration runs
// against it. Runs share nothing; each one re-reads the dataset and the
// artifact.
type Runner struct {
	config *regen.Config
}

func NewRunner(configPath string) (*Runner, error) {
	config, err := loadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Runner{
		config: config,
	}, nil
}

// NewRunnerWithOverrides applies non-empty command line values over the
// loaded config.
func NewRunnerWithOverrides(configPath, artifact, dataset, profile string) (*Runner, error) {
	config, err := loadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if artifact != "" {
		config.Artifact.Path = artifact
	}
	if dataset != "" {
		config.Dataset.Path = dataset
	}
	if profile != "" {
		config.Artifact.Profile = profile
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Runner{
		config: config,
	}, nil
}

// loadOrDefault treats the config file as optional: an absent file means
// defaults, a present file must parse and validate.
func loadOrDefault(path string) (*regen.Config, error) {
	if path == "" {
		return regen.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return regen.DefaultConfig(), nil
	}
	return regen.LoadConfig(path)
}

func (r *Runner) Config() *regen.Config {
	return r.config
}

func (r *Runner) Run(ctx context.Context, handler events.Handler) (regen.Result, error) {
	return regen.Run(
		regen.WithContext(ctx),
		regen.WithArtifact(r.config.Artifact.Path),
		regen.WithDataset(r.config.Dataset.Path),
		regen.WithProfile(r.config.Profile()),
		regen.WithHandler(handler),
	)
}
