package regen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.Artifact.Path != "classifiers_gen.go" {
		t.Errorf("default artifact path = %q", cfg.Artifact.Path)
	}
	if got := cfg.Profile().Name; got != "go" {
		t.Errorf("default profile = %q, want go", got)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "full config",
			content: `
[artifact]
path = "src/lib.rs"
profile = "rust"

[dataset]
path = "classifiers.yaml"
`,
		},
		{
			name:    "unknown keys rejected",
			content: "[artifact]\nptah = \"lib.rs\"\n",
			wantErr: "unknown config keys",
		},
		{
			name:    "unknown profile rejected",
			content: "[artifact]\nprofile = \"zig\"\n",
			wantErr: "unknown profile",
		},
		{
			name:    "empty artifact path rejected",
			content: "[artifact]\npath = \"  \"\n",
			wantErr: "artifact.path",
		},
		{
			name:    "future tool version rejected",
			content: "[regen]\nversion = \"99.0.0\"\n",
			wantErr: "or newer",
		},
		{
			name:    "unparseable tool version rejected",
			content: "[regen]\nversion = \"latest\"\n",
			wantErr: "invalid version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("LoadConfig failed: %v", err)
				}
				if cfg.Artifact.Path != "src/lib.rs" {
					t.Errorf("artifact path = %q", cfg.Artifact.Path)
				}
				if cfg.Profile().Name != "rust" {
					t.Errorf("profile = %q", cfg.Profile().Name)
				}
				return
			}

			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
