//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package knowledge

import "strings"

// Store is the ordered, read-only collection of namespaces. It is built once
// at startup and shared by reference; no mutation happens after that, so it
// needs no locking.
type Store struct {
	namespaces []*Namespace
}

// NewStore creates a store over the given namespaces, preserving order.
func NewStore(namespaces []*Namespace) *Store {
	return &Store{namespaces: namespaces}
}

// Len returns the number of namespaces in the store.
func (s *Store) Len() int {
	return len(s.namespaces)
}

// Namespaces returns the stored namespaces in load order.
func (s *Store) Namespaces() []*Namespace {
	return s.namespaces
}

// Summaries renders the id/title/description block of every namespace,
// blocks separated by blank lines, in load order.
func (s *Store) Summaries() string {
	blocks := make([]string, 0, len(s.namespaces))
	for _, ns := range s.namespaces {
		blocks = append(blocks, ns.Summary())
	}
	return strings.Join(blocks, "\n\n")
}

// Lookup returns the first namespace whose id matches. Uniqueness of ids is
// assumed, not enforced.
func (s *Store) Lookup(id string) (*Namespace, bool) {
	for _, ns := range s.namespaces {
		if ns.ID == id {
			return ns, true
		}
	}
	return nil, false
}
