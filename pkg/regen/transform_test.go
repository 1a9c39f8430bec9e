package regen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const rustTemplate = `//! Python packaging classifiers as an Enum.

pub const PYPA_VERSION: &str = "0.0.0";

#[derive(Debug)]
pub enum Classifier {
    #[strum(serialize = "Stale :: Entry")]
    Stale__Entry,
}

impl Classifier {}
`

func runTransform(t *testing.T, input, version string, classifiers []string, p Profile) string {
	t.Helper()

	var out bytes.Buffer
	if err := Transform(&out, strings.NewReader(input), version, classifiers, p); err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	return out.String()
}

func TestTransformScenario(t *testing.T) {
	input := "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
		"pub enum Classifier {\n" +
		"}\n"

	got := runTransform(t, input, "2024.1",
		[]string{"Topic :: Software Development", "License :: OSI Approved"}, RustProfile)

	want := "pub const PYPA_VERSION: &str = \"2024.1\";\n" +
		"pub enum Classifier {\n" +
		"    #[strum(serialize = \"Topic :: Software Development\")]\n" +
		"    Topic__SoftwareDevelopment,\n" +
		"    #[strum(serialize = \"License :: OSI Approved\")]\n" +
		"    License__OSIApproved,\n" +
		"}\n"

	if got != want {
		t.Errorf("Transform output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTransformRegionIsolation(t *testing.T) {
	got := runTransform(t, rustTemplate, "2024.1", []string{"Topic :: Utilities"}, RustProfile)

	// Every line outside the two regions survives byte for byte, in
	// order.
	preserved := []string{
		"//! Python packaging classifiers as an Enum.\n",
		"#[derive(Debug)]\n",
		"impl Classifier {}\n",
	}
	for _, line := range preserved {
		if !strings.Contains(got, line) {
			t.Errorf("output lost line %q", line)
		}
	}

	if !strings.HasPrefix(got, "//! Python packaging classifiers as an Enum.\n") {
		t.Errorf("leading lines reordered:\n%s", got)
	}
	if !strings.HasSuffix(got, "}\n\nimpl Classifier {}\n") {
		t.Errorf("trailing lines reordered:\n%s", got)
	}
	if strings.Contains(got, "Stale") {
		t.Errorf("old block content not discarded:\n%s", got)
	}
}

func TestTransformOrderAndRoundTrip(t *testing.T) {
	classifiers := []string{
		"License :: OSI Approved",
		"Development Status :: 4 - Beta",
		"Topic :: Software Development",
	}

	got := runTransform(t, rustTemplate, "2024.1", classifiers, RustProfile)

	// Entries appear in supplied order with the verbatim value quoted in
	// the serialization line.
	last := -1
	for _, c := range classifiers {
		serial := "#[strum(serialize = \"" + c + "\")]"
		idx := strings.Index(got, serial)
		if idx < 0 {
			t.Fatalf("output is missing serialization line for %q", c)
		}
		if idx < last {
			t.Errorf("entry %q emitted out of order", c)
		}
		last = idx
	}
}

func TestTransformIdempotence(t *testing.T) {
	classifiers := []string{"Topic :: Software Development", "Topic :: Utilities"}

	first := runTransform(t, rustTemplate, "2024.1", classifiers, RustProfile)
	second := runTransform(t, first, "2024.1", classifiers, RustProfile)

	if first != second {
		t.Errorf("second run diverged\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestTransformGoProfile(t *testing.T) {
	input := "// Package classifiers.\n" +
		"package classifiers\n" +
		"\n" +
		"const PypaVersion = \"0.0.0\"\n" +
		"\n" +
		"var (\n" +
		"\t// trove:begin\n" +
		"\t// trove:end\n" +
		")\n"

	got := runTransform(t, input, "2024.1", []string{"Topic :: Software Development"}, GoProfile)

	want := "// Package classifiers.\n" +
		"package classifiers\n" +
		"\n" +
		"const PypaVersion = \"2024.1\"\n" +
		"\n" +
		"var (\n" +
		"\t// trove:begin\n" +
		"\t// Topic :: Software Development\n" +
		"\tTopic__SoftwareDevelopment = register(\"Topic :: Software Development\")\n" +
		"\t// trove:end\n" +
		")\n"

	if got != want {
		t.Errorf("Transform output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTransformMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "closing marker missing",
			input: "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
				"pub enum Classifier {\n" +
				"    Stale__Entry,\n",
		},
		{
			name:  "version line missing",
			input: "pub enum Classifier {\n}\n",
		},
		{
			name:  "enumeration block missing",
			input: "pub const PYPA_VERSION: &str = \"0.0.0\";\n",
		},
		{
			name: "version line duplicated",
			input: "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
				"pub const PYPA_VERSION: &str = \"0.0.1\";\n" +
				"pub enum Classifier {\n}\n",
		},
		{
			name: "enumeration block duplicated",
			input: "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
				"pub enum Classifier {\n}\n" +
				"pub enum Classifier {\n}\n",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Transform(&out, strings.NewReader(tt.input), "2024.1", nil, RustProfile)
			if !errors.Is(err, ErrMalformedTemplate) {
				t.Errorf("Transform error = %v, want ErrMalformedTemplate", err)
			}
		})
	}
}

func TestTransformPreservesFinalLineWithoutNewline(t *testing.T) {
	input := "pub const PYPA_VERSION: &str = \"0.0.0\";\n" +
		"pub enum Classifier {\n" +
		"}\n" +
		"// trailing comment, no newline"

	got := runTransform(t, input, "2024.1", nil, RustProfile)

	if !strings.HasSuffix(got, "// trailing comment, no newline") {
		t.Errorf("final unterminated line not preserved:\n%q", got)
	}
}
