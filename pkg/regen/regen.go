// Package regen rewrites a generated source file so its embedded
// classifier enumeration and version constant track the
// pypa/trove-classifiers dataset. Only the two marked regions change;
// every other byte of the artifact survives a run untouched.
package regen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ucodery/trove-classifiers/pkg/events"
	"github.com/ucodery/trove-classifiers/pkg/taxonomy"
	"github.com/ucodery/trove-classifiers/pkg/utils/fileutils"
)

// Result summarizes one successful regeneration run.
type Result struct {
	Version     string
	Classifiers int
	Changed     bool
	Duration    time.Duration
}

// Run performs one full regeneration: query the taxonomy source, stream
// the artifact through Transform into a staged sibling file, then
// promote the staged file over the original. Any failure before the
// promotion leaves the original artifact untouched; there is no retry.
func Run(opts ...Option) (Result, error) {
	o := defaultOptions().Apply(opts...)
	start := time.Now()

	emit := func(level events.Level, stage, message string, err error) {
		o.handler.Handle(events.Event{Level: level, Stage: stage, Message: message, Err: err})
	}

	src := o.source
	if src == nil {
		src = taxonomy.FromFile(o.dataset)
	}

	version, err := src.CurrentVersion()
	if err != nil {
		emit(events.Error, "load", "querying taxonomy version", err)
		return Result{}, err
	}
	classifiers, err := src.SortedClassifiers()
	if err != nil {
		emit(events.Error, "load", "querying classifier list", err)
		return Result{}, err
	}
	emit(events.Info, "load", fmt.Sprintf("pypa %s, %d classifiers", version, len(classifiers)), nil)

	if err := o.context.Err(); err != nil {
		return Result{}, err
	}

	in, err := os.Open(o.artifact)
	if err != nil {
		err = fmt.Errorf("opening artifact: %w", err)
		emit(events.Error, "transform", o.artifact, err)
		return Result{}, err
	}
	defer in.Close()

	changed, err := fileutils.AtomicEdit(o.artifact, func(w io.Writer) error {
		return Transform(w, in, version, classifiers, o.profile)
	})
	if err != nil {
		stage := "commit"
		if errors.Is(err, ErrMalformedTemplate) {
			stage = "transform"
		}
		emit(events.Error, stage, o.artifact, err)
		return Result{}, err
	}

	if changed {
		emit(events.Info, "commit", o.artifact+" updated", nil)
	} else {
		emit(events.Info, "commit", o.artifact+" already up to date", nil)
	}

	return Result{
		Version:     version,
		Classifiers: len(classifiers),
		Changed:     changed,
		Duration:    time.Since(start),
	}, nil
}
