package regen

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ucodery/trove-classifiers/pkg/version"
)

// Config is the optional regen.toml. A plain run needs no config file;
// every field has a working default.
type Config struct {
	Regen    ToolConfig     `toml:"regen"`
	Artifact ArtifactConfig `toml:"artifact"`
	Dataset  DatasetConfig  `toml:"dataset"`
}

type ToolConfig struct {
	// Version is the minimum trove-regen version this config expects.
	Version string `toml:"version"`
}

type ArtifactConfig struct {
	Path    string `toml:"path"`
	Profile string `toml:"profile"`
}

type DatasetConfig struct {
	Path string `toml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Regen: ToolConfig{
			Version: version.String(),
		},
		Artifact: ArtifactConfig{
			Path:    "classifiers_gen.go",
			Profile: GoProfile.Name,
		},
		Dataset: DatasetConfig{
			Path: "data/classifiers.yaml",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}

	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undec)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Artifact.Path = strings.TrimSpace(c.Artifact.Path)
	if c.Artifact.Path == "" {
		return fmt.Errorf("artifact.path must not be empty")
	}
	c.Dataset.Path = strings.TrimSpace(c.Dataset.Path)
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}

	if _, err := ProfileByName(c.Artifact.Profile); err != nil {
		return err
	}

	if c.Regen.Version != "" {
		required, err := version.Parse(c.Regen.Version)
		if err != nil {
			return err
		}
		if version.Current().Less(required) {
			return fmt.Errorf("config requires trove-regen %s or newer, this is %s", required, version.String())
		}
	}

	return nil
}

// Profile resolves the configured artifact profile. Validate must have
// accepted the config first.
func (c *Config) Profile() Profile {
	p, err := ProfileByName(c.Artifact.Profile)
	if err != nil {
		panic(err)
	}
	return p
}
