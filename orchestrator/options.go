//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package orchestrator

import (
	"io"

	"trpc.group/trpc-go/trpc-namespace-router/synthesizer"
)

// Option is a function that configures an Orchestrator.
type Option func(*Orchestrator)

// WithSynthesizer wires a synthesizer into the orchestrator, enabling the
// Answer operation. ProcessQuery stays a pure router either way.
func WithSynthesizer(s *synthesizer.Synthesizer) Option {
	return func(o *Orchestrator) {
		o.synthesizer = s
	}
}

// WithOutput sets the writer receiving the reporting lines, os.Stdout by
// default.
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.out = w
	}
}

// WithParallelism bounds the synthesis fan-out pool, 4 by default.
func WithParallelism(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.parallelism = n
		}
	}
}
