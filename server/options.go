package server

import (
	"github.com/sirupsen/logrus"

	"github.com/tutils/tperm"
	"github.com/tutils/tperm/counter"
)

// Options is server options
type Options struct {
	addr         string
	shared       *tperm.SyncGenerator
	batch        int
	logger       logrus.FieldLogger
	valueCounter counter.Counter
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/stream"
	DefaultBatch         = 512
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.batch <= 0 {
		opt.batch = DefaultBatch
	}
	if opt.logger == nil {
		opt.logger = logrus.StandardLogger()
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithSharedGenerator makes every session draw from g instead of building
// its own generator, so no value is handed to two sessions.
func WithSharedGenerator(g *tperm.SyncGenerator) Option {
	return func(opts *Options) {
		opts.shared = g
	}
}

// WithBatch sets the maximum number of values per websocket message.
func WithBatch(n int) Option {
	return func(opts *Options) {
		opts.batch = n
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}

// WithValueCounter counts every value sent to any session.
func WithValueCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.valueCounter = c
	}
}
