//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package source defines the interface for knowledge-store sources.
package source

import (
	"context"
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
)

// Source types
const (
	TypeFile = "file"
	TypeDir  = "dir"
)

// Accepted top-level collection keys of a knowledge-store document.
// KeyNamespaces wins when both are present, by presence rather than by
// content: an empty list under "namespaces" is not overridden by "dataset".
const (
	KeyNamespaces = "namespaces"
	KeyDataset    = "dataset"
)

// Source represents a knowledge source that can provide namespace records.
type Source interface {
	// ReadNamespaces reads and returns the namespace records of the source,
	// in document order.
	ReadNamespaces(ctx context.Context) ([]*knowledge.Namespace, error)

	// Name returns a human-readable name for this source.
	Name() string

	// Type returns the type of this source (e.g., "file", "dir").
	Type() string
}

// ParseDocument decodes one knowledge-store document. The collection is read
// from the "namespaces" key, falling back to "dataset" when "namespaces" is
// absent. A document carrying neither key yields no records.
func ParseDocument(data []byte) ([]*knowledge.Namespace, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode knowledge-store document: %w", err)
	}
	collection, ok := raw[KeyNamespaces]
	if !ok {
		collection, ok = raw[KeyDataset]
	}
	if !ok {
		return nil, nil
	}
	var namespaces []*knowledge.Namespace
	if err := json.Unmarshal(collection, &namespaces); err != nil {
		return nil, fmt.Errorf("decode namespace collection: %w", err)
	}
	return namespaces, nil
}
