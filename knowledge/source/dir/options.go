//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package dir

// Option is a function that configures a directory source.
type Option func(*Source)

// WithPattern overrides the glob pattern, which defaults to "**/*.json".
func WithPattern(pattern string) Option {
	return func(s *Source) {
		s.pattern = pattern
	}
}

// WithName overrides the source name, which defaults to the directory base
// name.
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}
