//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// staticModel implements model.Model with a canned response.
type staticModel struct {
	content string
	err     error

	calls       int
	lastRequest *model.Request
}

func (m *staticModel) GenerateContent(_ context.Context, request *model.Request) (*model.Response, error) {
	m.calls++
	m.lastRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &model.Response{
		Choices: []model.Choice{
			{Message: model.Message{Role: model.RoleAssistant, Content: m.content}},
		},
	}, nil
}

func (m *staticModel) Info() model.Info {
	return model.Info{Name: "static-model"}
}

func physicsStore() *knowledge.Store {
	return knowledge.NewStore([]*knowledge.Namespace{
		{ID: "ns1", Title: "Physics", Description: "mechanics"},
	})
}

func TestMatchReturnsIDsInEmissionOrder(t *testing.T) {
	backend := &staticModel{content: "namespace_001,namespace_009"}
	m := New(backend, physicsStore())

	result := m.Match(context.Background(), "What is inertia?")
	require.True(t, result.Matched)
	assert.Equal(t, []string{"namespace_001", "namespace_009"}, result.NamespaceIDs)
	assert.Equal(t, 1, backend.calls)
}

func TestMatchTrimsWhitespace(t *testing.T) {
	backend := &staticModel{content: " namespace_001 , namespace_002 "}
	m := New(backend, physicsStore())

	result := m.Match(context.Background(), "query")
	require.True(t, result.Matched)
	assert.Equal(t, []string{"namespace_001", "namespace_002"}, result.NamespaceIDs)
}

func TestMatchKeepsDuplicates(t *testing.T) {
	backend := &staticModel{content: "namespace_001,namespace_001"}
	m := New(backend, physicsStore())

	result := m.Match(context.Background(), "query")
	assert.Equal(t, []string{"namespace_001", "namespace_001"}, result.NamespaceIDs)
}

func TestMatchSentinel(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "bare sentinel", response: "NO_NAMESPACE_FOUND"},
		{name: "lowercase sentinel", response: "no_namespace_found"},
		{name: "surrounded by prose", response: "I am sorry, NO_NAMESPACE_FOUND matches this query."},
		{name: "embedded mid-word", response: "xNO_NAMESPACE_FOUNDx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &staticModel{content: tt.response}
			m := New(backend, physicsStore())

			result := m.Match(context.Background(), "recipe for chocolate cake")
			assert.False(t, result.Matched)
			assert.Empty(t, result.NamespaceIDs)
		})
	}
}

func TestMatchConflatesBackendError(t *testing.T) {
	backend := &staticModel{err: errors.New("quota exceeded")}
	m := New(backend, physicsStore())

	// The failure is folded into the response text and parsed like any
	// other response, so it surfaces as a garbage id list.
	result := m.Match(context.Background(), "query")
	require.True(t, result.Matched)
	assert.Equal(t, []string{"Error: quota exceeded"}, result.NamespaceIDs)
}

func TestMatchPromptShape(t *testing.T) {
	backend := &staticModel{content: "ns1"}
	m := New(backend, physicsStore())

	m.Match(context.Background(), "What is inertia?")
	require.NotNil(t, backend.lastRequest)
	require.Len(t, backend.lastRequest.Messages, 2)
	assert.Equal(t, model.RoleSystem, backend.lastRequest.Messages[0].Role)
	assert.Equal(t, "User Query: What is inertia?", backend.lastRequest.Messages[1].Content)
}

func TestInstructionEmbedsSummaries(t *testing.T) {
	m := New(&staticModel{}, physicsStore())
	assert.Contains(t, m.Instruction(), "Namespace ID: ns1")
	assert.Contains(t, m.Instruction(), "Title: Physics")
	assert.Contains(t, m.Instruction(), "Description: mechanics")
	assert.Contains(t, m.Instruction(), Sentinel)
}

func TestParseEmptyResponse(t *testing.T) {
	// Garbage in, garbage ids out: an empty response parses to one empty id.
	result := Parse("")
	require.True(t, result.Matched)
	assert.Equal(t, []string{""}, result.NamespaceIDs)
}
