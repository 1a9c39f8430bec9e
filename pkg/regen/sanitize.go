package regen

import "strings"

// replacements is applied top to bottom as whole-string substitutions.
// The order is load-bearing: "::" must collapse before the single-space
// rule deletes its padding, and every rule sees text produced by the
// rules above it.
var replacements = [...][2]string{
	{"::", "__"},
	{".", "_"},
	{" ", ""},
	{"(", ""},
	{")", ""},
	{"/", ""},
	{"-", ""},
	{"'", ""},
	{"#", "sharp"},
	{"+", "plus"},
}

// Sanitize derives the member identifier for a classifier string. It is
// pure and deterministic; distinct classifiers are assumed not to
// collide after substitution, which holds for every published dataset
// but is not checked here.
func Sanitize(classifier string) string {
	for _, r := range replacements {
		classifier = strings.ReplaceAll(classifier, r[0], r[1])
	}
	return classifier
}
