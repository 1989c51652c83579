//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package runner

import "io"

// Option is a function that configures a Runner.
type Option func(*Runner)

// WithInput sets the reader queries are read from, os.Stdin by default.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.in = in
	}
}

// WithOutput sets the writer for prompts, answers and error reports,
// os.Stdout by default.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.out = out
	}
}

// WithSynthesis switches the runner from pure routing to the full
// question-answering pipeline.
func WithSynthesis(enabled bool) Option {
	return func(r *Runner) {
		r.synthesize = enabled
	}
}
