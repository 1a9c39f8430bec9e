// Package taxonomy supplies the trove classifier dataset: the version of
// an upstream pypa/trove-classifiers release and its ordered classifier
// list.
package taxonomy

import "errors"

// ErrUnavailable means the dataset could not be queried at all. A run
// that sees it has not touched the artifact yet.
var ErrUnavailable = errors.New("taxonomy unavailable")

// Source supplies one snapshot of the classifier taxonomy. Both calls
// must return stable answers for the lifetime of one regeneration run.
// The classifier order is the upstream published order; this package
// never re-sorts it.
type Source interface {
	CurrentVersion() (string, error)
	SortedClassifiers() ([]string, error)
}

// Dataset is the on-disk snapshot format (data/classifiers.yaml).
type Dataset struct {
	Version     string   `yaml:"version"`
	Classifiers []string `yaml:"classifiers"`
}
