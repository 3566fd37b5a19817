package perm

import (
	"github.com/tutils/tperm/counter"
	"github.com/tutils/tperm/entropy"
)

// Options configures a Generator.
type Options struct {
	source        entropy.Source
	rejectCounter counter.Counter
}

// Option is option setter for Generator
type Option func(opts *Options)

// DefaultSeed seeds the default source.
const DefaultSeed = 1

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.source == nil {
		opt.source = entropy.NewPCGSource(DefaultSeed)
	}

	return opt
}

// WithSource sets the entropy source the stages are drawn from.
func WithSource(src entropy.Source) Option {
	return func(opts *Options) {
		opts.source = src
	}
}

// WithRejectCounter counts the extra pipeline rounds Next spends on
// out-of-range values.
func WithRejectCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.rejectCounter = c
	}
}
