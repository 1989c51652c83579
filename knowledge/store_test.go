//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore([]*Namespace{
		{ID: "namespace_001", Title: "Physics", Description: "mechanics"},
		{ID: "namespace_002", Title: "Chemistry", Description: "organic chemistry"},
		{ID: "namespace_001", Title: "Physics (copy)", Description: "duplicated id"},
	})
}

func TestStoreSummaries(t *testing.T) {
	store := newTestStore()
	want := "Namespace ID: namespace_001\nTitle: Physics\nDescription: mechanics\n\n" +
		"Namespace ID: namespace_002\nTitle: Chemistry\nDescription: organic chemistry\n\n" +
		"Namespace ID: namespace_001\nTitle: Physics (copy)\nDescription: duplicated id"
	assert.Equal(t, want, store.Summaries())
}

func TestStoreLookupReturnsFirstMatch(t *testing.T) {
	store := newTestStore()
	ns, ok := store.Lookup("namespace_001")
	require.True(t, ok)
	assert.Equal(t, "Physics", ns.Title)
}

func TestStoreLookupMiss(t *testing.T) {
	store := newTestStore()
	_, ok := store.Lookup("namespace_999")
	assert.False(t, ok)
}

func TestStoreLen(t *testing.T) {
	assert.Equal(t, 3, newTestStore().Len())
	assert.Equal(t, 0, NewStore(nil).Len())
}
