package regen

import "fmt"

// Profile describes one artifact flavor: the anchor lines that locate
// the two generated regions and the layout of one enumeration entry.
//
// SerialFormat and MemberFormat are Sprintf formats applied to the pair
// (member name, classifier string); they must use indexed verbs so each
// line can pick the part it needs.
type Profile struct {
	Name string

	// VersionPrefix marks the version constant line. The whole line is
	// replaced by VersionFormat applied to the dataset version.
	VersionPrefix string
	VersionFormat string

	// BlockOpen and BlockClose delimit the enumeration block. They are
	// matched against input lines byte for byte, trailing newline
	// included.
	BlockOpen  string
	BlockClose string

	SerialFormat string
	MemberFormat string
}

// GoProfile targets this repository's classifiers_gen.go.
var GoProfile = Profile{
	Name:          "go",
	VersionPrefix: "const PypaVersion",
	VersionFormat: "const PypaVersion = %[1]q",
	BlockOpen:     "\t// trove:begin",
	BlockClose:    "\t// trove:end",
	SerialFormat:  "\t// %[2]s",
	MemberFormat:  "\t%[1]s = register(%[2]q)",
}

// RustProfile targets the lib.rs layout of the upstream
// trove-classifiers crate.
var RustProfile = Profile{
	Name:          "rust",
	VersionPrefix: "pub const PYPA_VERSION",
	VersionFormat: `pub const PYPA_VERSION: &str = "%[1]s";`,
	BlockOpen:     "pub enum Classifier {",
	BlockClose:    "}",
	SerialFormat:  `    #[strum(serialize = "%[2]s")]`,
	MemberFormat:  "    %[1]s,",
}

// ProfileByName resolves a profile named in config or on the command
// line.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case GoProfile.Name:
		return GoProfile, nil
	case RustProfile.Name:
		return RustProfile, nil
	default:
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
}
