//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package file provides a single-file knowledge source.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/knowledge/source"
)

// Source reads namespace records from one JSON knowledge-store file.
type Source struct {
	path string
	name string
}

// New creates a file source for the given path.
func New(path string, opts ...Option) *Source {
	s := &Source{
		path: path,
		name: filepath.Base(path),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadNamespaces implements the source.Source interface.
func (s *Source) ReadNamespaces(_ context.Context) ([]*knowledge.Namespace, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge store %s: %w", s.path, err)
	}
	namespaces, err := source.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge store %s: %w", s.path, err)
	}
	return namespaces, nil
}

// Name implements the source.Source interface.
func (s *Source) Name() string {
	return s.name
}

// Type implements the source.Source interface.
func (s *Source) Type() string {
	return source.TypeFile
}
