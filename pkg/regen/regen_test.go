package regen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ucodery/trove-classifiers/pkg/events"
	"github.com/ucodery/trove-classifiers/pkg/taxonomy"
)

const testDataset = `version: "2024.1"
classifiers:
  - "License :: OSI Approved"
  - "Topic :: Software Development"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "lib.rs")
	dataset := filepath.Join(dir, "classifiers.yaml")

	writeFile(t, artifact, rustTemplate)
	writeFile(t, dataset, testDataset)

	collector := events.NewCollector(events.NewNoopHandler())

	result, err := Run(
		WithArtifact(artifact),
		WithDataset(dataset),
		WithProfile(RustProfile),
		WithHandler(collector),
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Version != "2024.1" {
		t.Errorf("result version = %q, want %q", result.Version, "2024.1")
	}
	if result.Classifiers != 2 {
		t.Errorf("result classifiers = %d, want 2", result.Classifiers)
	}
	if !result.Changed {
		t.Error("first run reported no change")
	}
	if collector.HasLevel(events.Error) {
		t.Errorf("run emitted errors: %s", collector.Summary())
	}

	out, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`pub const PYPA_VERSION: &str = "2024.1";`,
		`    #[strum(serialize = "License :: OSI Approved")]`,
		"    License__OSIApproved,",
		"    Topic__SoftwareDevelopment,",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("artifact is missing %q", want)
		}
	}
}

func TestRunIdempotence(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "lib.rs")
	dataset := filepath.Join(dir, "classifiers.yaml")

	writeFile(t, artifact, rustTemplate)
	writeFile(t, dataset, testDataset)

	opts := []Option{
		WithArtifact(artifact),
		WithDataset(dataset),
		WithProfile(RustProfile),
	}

	if _, err := Run(opts...); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}

	result, err := Run(opts...)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if result.Changed {
		t.Error("second run with the same dataset reported a change")
	}

	second, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("second run altered the artifact")
	}
}

func TestRunMalformedArtifactUntouched(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "lib.rs")
	dataset := filepath.Join(dir, "classifiers.yaml")

	// Opening marker with no matching close.
	broken := "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
		"pub enum Classifier {\n" +
		"    Stale__Entry,\n"
	writeFile(t, artifact, broken)
	writeFile(t, dataset, testDataset)

	_, err := Run(
		WithArtifact(artifact),
		WithDataset(dataset),
		WithProfile(RustProfile),
	)
	if !errors.Is(err, ErrMalformedTemplate) {
		t.Fatalf("Run error = %v, want ErrMalformedTemplate", err)
	}

	out, readErr := os.ReadFile(artifact)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(out) != broken {
		t.Error("failed run modified the original artifact")
	}

	// The staging file must not replace or shadow the artifact.
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	for _, e := range entries {
		if e.Name() != "lib.rs" && e.Name() != "classifiers.yaml" {
			t.Errorf("staging file left behind: %s", e.Name())
		}
	}
}

func TestRunTaxonomyUnavailable(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "lib.rs")
	writeFile(t, artifact, rustTemplate)

	_, err := Run(
		WithArtifact(artifact),
		WithDataset(filepath.Join(dir, "missing.yaml")),
		WithProfile(RustProfile),
	)
	if !errors.Is(err, taxonomy.ErrUnavailable) {
		t.Fatalf("Run error = %v, want taxonomy.ErrUnavailable", err)
	}

	out, readErr := os.ReadFile(artifact)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(out) != rustTemplate {
		t.Error("run without a taxonomy modified the artifact")
	}
}

func TestRunWithSource(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "lib.rs")
	writeFile(t, artifact, rustTemplate)

	result, err := Run(
		WithArtifact(artifact),
		WithSource(staticSource{
			version:     "2025.3.1",
			classifiers: []string{"Typing :: Typed"},
		}),
		WithProfile(RustProfile),
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Version != "2025.3.1" {
		t.Errorf("result version = %q, want %q", result.Version, "2025.3.1")
	}

	out, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "    Typing__Typed,") {
		t.Error("injected source entries not emitted")
	}
}

type staticSource struct {
	version     string
	classifiers []string
}

func (s staticSource) CurrentVersion() (string, error) {
	return s.version, nil
}

func (s staticSource) SortedClassifiers() ([]string, error) {
	return s.classifiers, nil
}
