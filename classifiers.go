// Package classifiers provides the PyPI trove classifiers as Go
// identifiers.
//
// Trove classifiers encompass all valid PyPI classifiers, listed at
// https://pypi.org/classifiers/. The set shipped here is generated from
// pypa/trove-classifiers, the canonical source of PyPI's classifiers;
// PypaVersion records which release the enumeration was generated from.
package classifiers

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Classifier is one PyPI trove classifier. Its string value is the exact
// form published by PyPA, e.g. "Development Status :: 5 - Production/Stable".
type Classifier string

var ErrUnknownClassifier = errors.New("unknown classifier")

var (
	sorted []Classifier
	known  = map[Classifier]struct{}{}
)

// register is called by the generated enumeration, in published order.
func register(serial string) Classifier {
	c := Classifier(serial)
	sorted = append(sorted, c)
	known[c] = struct{}{}
	return c
}

// Parse returns the classifier whose published form is exactly s. No
// normalization is applied; "Topic::Utilities" is not a classifier.
func Parse(s string) (Classifier, error) {
	c := Classifier(s)
	if _, ok := known[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClassifier, s)
	}
	return c, nil
}

// Is reports whether s is a classifier known to pypi.org.
func Is(s string) bool {
	_, ok := known[Classifier(s)]
	return ok
}

// All returns every classifier in the order published by PyPA.
func All() []Classifier {
	return slices.Clone(sorted)
}

func (c Classifier) String() string {
	return string(c)
}

// Split breaks the classifier into its hierarchy components:
// "Topic :: Software Development" becomes ["Topic", "Software Development"].
func (c Classifier) Split() []string {
	return strings.Split(string(c), " :: ")
}
