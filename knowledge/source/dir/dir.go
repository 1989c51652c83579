//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package dir provides a directory knowledge source. It loads every
// knowledge-store file matching a glob pattern and merges the records in
// path order, so the resulting store order is deterministic.
package dir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/knowledge/source"
)

// defaultPattern matches JSON documents anywhere under the root.
const defaultPattern = "**/*.json"

// Source reads namespace records from a directory tree of knowledge-store
// files.
type Source struct {
	root    string
	pattern string
	name    string
}

// New creates a directory source rooted at root.
func New(root string, opts ...Option) *Source {
	s := &Source{
		root:    root,
		pattern: defaultPattern,
		name:    filepath.Base(root),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadNamespaces implements the source.Source interface.
func (s *Source) ReadNamespaces(_ context.Context) ([]*knowledge.Namespace, error) {
	matches, err := doublestar.Glob(os.DirFS(s.root), s.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s under %s: %w", s.pattern, s.root, err)
	}
	sort.Strings(matches)
	var namespaces []*knowledge.Namespace
	for _, match := range matches {
		path := filepath.Join(s.root, filepath.FromSlash(match))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read knowledge store %s: %w", path, err)
		}
		records, err := source.ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("parse knowledge store %s: %w", path, err)
		}
		namespaces = append(namespaces, records...)
	}
	return namespaces, nil
}

// Name implements the source.Source interface.
func (s *Source) Name() string {
	return s.name
}

// Type implements the source.Source interface.
func (s *Source) Type() string {
	return source.TypeDir
}
