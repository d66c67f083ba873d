// SPDX-License-Identifier: MIT

package model

import (
	"io"
	"log/slog"
)

const (
	// DefaultValidateNaNInf rejects non-finite data at construction.
	DefaultValidateNaNInf = true

	// DefaultTruncation renormalizes priors cut off by their block transform.
	DefaultTruncation = true
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger         *slog.Logger
	validateNaNInf bool
	truncation     bool
}

// WithLogger routes construction-time Debug records to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("model: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithValidateNaNInf rejects NaN/±Inf in C, Y and design matrices (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the finite-value scan of the data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTruncation subtracts K·log P(prior ∈ support) for every block whose
// transform support excludes part of its prior's support (default).
func WithTruncation() Option {
	return func(o *Options) { o.truncation = true }
}

// WithoutTruncation leaves truncated priors unnormalized. The result differs
// from the default by a constant, which samplers ignore.
func WithoutTruncation() Option {
	return func(o *Options) { o.truncation = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		validateNaNInf: DefaultValidateNaNInf,
		truncation:     DefaultTruncation,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
