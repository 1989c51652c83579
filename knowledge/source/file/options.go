//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package file

// Option is a function that configures a file source.
type Option func(*Source)

// WithName overrides the source name, which defaults to the file base name.
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}
