package classifiers

import (
	"errors"
	"slices"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	const trove = "Programming Language :: Rust"

	c, err := Parse(trove)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", trove, err)
	}
	if c.String() != trove {
		t.Errorf("String() = %q, want %q", c.String(), trove)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	trove := License__OSIApproved__AcademicFreeLicenseAFL

	parts := trove.Split()
	want := []string{
		"License",
		"OSI Approved",
		"Academic Free License (AFL)",
	}
	if !slices.Equal(parts, want) {
		t.Fatalf("Split() = %v, want %v", parts, want)
	}

	joined := ""
	for i, p := range parts {
		if i > 0 {
			joined += " :: "
		}
		joined += p
	}

	back, err := Parse(joined)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", joined, err)
	}
	if back != trove {
		t.Errorf("round trip gave %q, want %q", back, trove)
	}
}

func TestParseUnknown(t *testing.T) {
	tests := []string{
		// missing separator padding, wrong case, unknown entry
		"Topic::Utilities",
		"topic :: software development",
		"",
		"Development Status :: 9 - Imaginary",
	}

	for _, s := range tests {
		if _, err := Parse(s); !errors.Is(err, ErrUnknownClassifier) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownClassifier", s, err)
		}
		if Is(s) {
			t.Errorf("Is(%q) = true, want false", s)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()

	if len(all) == 0 {
		t.Fatal("All() is empty")
	}
	if all[0] != DevelopmentStatus__1Planning {
		t.Errorf("All()[0] = %q, want Development Status :: 1 - Planning", all[0])
	}
	if all[len(all)-1] != Typing__Typed {
		t.Errorf("All() last = %q, want Typing :: Typed", all[len(all)-1])
	}

	// Upstream uses natural sort, so numeric components order by value.
	older := slices.Index(all, Environment__GPU__NVIDIACUDA__2_0)
	newer := slices.Index(all, Environment__GPU__NVIDIACUDA__10_0)
	if older < 0 || newer < 0 || older > newer {
		t.Errorf("natural ordering lost: CUDA 2.0 at %d, CUDA 10.0 at %d", older, newer)
	}

	for _, c := range all {
		if !Is(string(c)) {
			t.Errorf("registered classifier %q not known", c)
		}
	}
}

func TestPypaVersion(t *testing.T) {
	if PypaVersion == "" {
		t.Fatal("PypaVersion is empty")
	}
}
