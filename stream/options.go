package stream

import "github.com/tutils/tperm/counter"

// Options configures an Encoder.
type Options struct {
	counter    counter.Counter
	bufferSize int
}

// Option is option setter for Encoder
type Option func(opts *Options)

// DefaultBufferSize is the write buffer used when none is set.
var DefaultBufferSize = 32 << 10

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.bufferSize <= 0 {
		opt.bufferSize = DefaultBufferSize
	}

	return opt
}

func (o *Options) count() {
	if o.counter != nil {
		o.counter.Add(1)
	}
}

// WithCounter counts every encoded value.
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}

// WithBufferSize sets the write buffer size.
func WithBufferSize(size int) Option {
	return func(opts *Options) {
		opts.bufferSize = size
	}
}
