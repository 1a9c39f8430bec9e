package regen

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double colon and space",
			input: "Topic :: Software Development",
			want:  "Topic__SoftwareDevelopment",
		},
		{
			name:  "osi approved",
			input: "License :: OSI Approved",
			want:  "License__OSIApproved",
		},
		{
			name:  "parens plus and slash",
			input: "License :: OSI Approved :: GNU General Public License v3 or later (GPLv3+)",
			want:  "License__OSIApproved__GNUGeneralPublicLicensev3orlaterGPLv3plus",
		},
		{
			name:  "dot to underscore",
			input: "Environment :: GPU :: NVIDIA CUDA :: 1.0",
			want:  "Environment__GPU__NVIDIACUDA__1_0",
		},
		{
			name:  "hash to sharp",
			input: "Programming Language :: C#",
			want:  "ProgrammingLanguage__Csharp",
		},
		{
			name:  "hyphen and slash removed",
			input: "Development Status :: 5 - Production/Stable",
			want:  "DevelopmentStatus__5ProductionStable",
		},
		{
			name:  "apostrophe removed",
			input: "Natural Language :: O'odham",
			want:  "NaturalLanguage__Oodham",
		},
		{
			name:  "no special characters",
			input: "Framework",
			want:  "Framework",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeDeterminism(t *testing.T) {
	const in = "Topic :: Scientific/Engineering :: Artificial Intelligence"

	first := Sanitize(in)
	second := Sanitize(in)
	if first != second {
		t.Fatalf("Sanitize is not stable: %q then %q", first, second)
	}
}

func TestSanitizeSpaceOnlyDifference(t *testing.T) {
	// Inputs differing only by one space must differ only by the
	// corresponding deletion.
	withSpace := Sanitize("Topic :: Software Development")
	noSpace := Sanitize("Topic :: SoftwareDevelopment")

	if withSpace != noSpace {
		t.Errorf("space handling diverged: %q vs %q", withSpace, noSpace)
	}
}
