// SPDX-License-Identifier: MIT

package qr

import (
	"io"
	"log/slog"
)

const (
	// DefaultReduce selects the complete Householder factorization.
	DefaultReduce = false

	// DefaultValidateNaNInf rejects non-finite input in New.
	DefaultValidateNaNInf = true
)

const panicNilLogger = "qr: WithLogger: logger must be non-nil"

// Option configures an engine built by New.
type Option func(*Options)

// Options is the resolved engine configuration.
type Options struct {
	reduce         bool
	logger         *slog.Logger
	validateNaNInf bool
}

// WithReduce selects the reduced Householder shape (Q: M×K, R: K×N, K = min(M,N)).
func WithReduce() Option {
	return func(o *Options) { o.reduce = true }
}

// WithComplete selects the complete Householder shape (Q: M×M, R: M×N). Default.
func WithComplete() Option {
	return func(o *Options) { o.reduce = false }
}

// WithLogger routes debug records (method, shape, elapsed time) to l.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithNoValidateNaNInf accepts NaN/±Inf in the input matrix.
// Non-finite input then propagates into Q, R and x.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		reduce:         DefaultReduce,
		logger:         discardLogger,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
