//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package matcher

import "trpc.group/trpc-go/trpc-namespace-router/model"

// Option is a function that configures a Matcher.
type Option func(*Matcher)

// WithName sets the matcher name used in logs.
func WithName(name string) Option {
	return func(m *Matcher) {
		m.name = name
	}
}

// WithGenerationConfig sets the generation parameters forwarded to the
// backend on every match call.
func WithGenerationConfig(config model.GenerationConfig) Option {
	return func(m *Matcher) {
		m.genConfig = config
	}
}
