//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package synthesizer

import "trpc.group/trpc-go/trpc-namespace-router/model"

// Option is a function that configures a Synthesizer.
type Option func(*Synthesizer)

// WithName sets the synthesizer name used in logs.
func WithName(name string) Option {
	return func(s *Synthesizer) {
		s.name = name
	}
}

// WithGenerationConfig sets the generation parameters forwarded to the
// backend on every synthesis call.
func WithGenerationConfig(config model.GenerationConfig) Option {
	return func(s *Synthesizer) {
		s.genConfig = config
	}
}
