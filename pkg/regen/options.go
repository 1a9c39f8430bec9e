package regen

import (
	"context"

	"github.com/ucodery/trove-classifiers/pkg/events"
	"github.com/ucodery/trove-classifiers/pkg/taxonomy"
)

func defaultOptions() *Options {
	return &Options{
		context:  context.Background(),
		artifact: "classifiers_gen.go",
		dataset:  "data/classifiers.yaml",
		profile:  GoProfile,
		handler:  events.NewNoopHandler(),
	}
}

type Options struct {
	context  context.Context
	artifact string
	dataset  string
	source   taxonomy.Source
	profile  Profile
	handler  events.Handler
}

func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*Options)

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.context = ctx
	}
}

func WithArtifact(path string) Option {
	return func(o *Options) {
		o.artifact = path
	}
}

func WithDataset(path string) Option {
	return func(o *Options) {
		o.dataset = path
	}
}

// WithSource overrides the dataset file with an arbitrary taxonomy
// source.
func WithSource(src taxonomy.Source) Option {
	return func(o *Options) {
		o.source = src
	}
}

func WithProfile(p Profile) Option {
	return func(o *Options) {
		o.profile = p
	}
}

func WithHandler(h events.Handler) Option {
	return func(o *Options) {
		o.handler = h
	}
}
