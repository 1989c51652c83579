//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package synthesizer

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

func testStore() *knowledge.Store {
	return knowledge.NewStore([]*knowledge.Namespace{
		{
			ID:          "namespace_001",
			Title:       "Physics",
			Description: "Classical mechanics",
			Payload: map[string]any{
				"content":  "Newton's laws of motion",
				"formulas": []any{"F = ma", "p = mv"},
			},
		},
	})
}

func TestSynthesizeGroundedAnswer(t *testing.T) {
	backend := &staticModel{content: "  Inertia is the resistance of a body to changes in motion.\n"}
	s := New(backend, testStore())

	answer := s.Synthesize(context.Background(), "namespace_001", "What is inertia?")
	assert.Equal(t, "Inertia is the resistance of a body to changes in motion.", answer)
	assert.Equal(t, 1, backend.calls)
}

func TestSynthesizePromptEmbedsEveryField(t *testing.T) {
	backend := &staticModel{content: "answer"}
	s := New(backend, testStore())

	s.Synthesize(context.Background(), "namespace_001", "What is inertia?")
	require.NotNil(t, backend.lastRequest)
	require.Len(t, backend.lastRequest.Messages, 2)
	prompt := backend.lastRequest.Messages[1].Content

	// The full record is grounded into the prompt: no field dropped.
	assert.Contains(t, prompt, "User Query: What is inertia?")
	assert.Contains(t, prompt, "namespace_001")
	assert.Contains(t, prompt, "Physics")
	assert.Contains(t, prompt, "Classical mechanics")
	assert.Contains(t, prompt, "Newton's laws of motion")
	assert.Contains(t, prompt, "F = ma")
	assert.Contains(t, prompt, "p = mv")
}

func TestSynthesizeUnknownNamespace(t *testing.T) {
	backend := &staticModel{content: "never used"}
	s := New(backend, testStore())

	for _, id := range []string{"namespace_999", "bogus", ""} {
		answer := s.Synthesize(context.Background(), id, "query")
		assert.Equal(t, "Error: Could not find data for namespace "+id, answer)
	}
	// Lookup misses never reach the backend.
	assert.Equal(t, 0, backend.calls)
}

func TestSynthesizeConflatesBackendError(t *testing.T) {
	backend := &staticModel{err: errors.New("backend unavailable")}
	s := New(backend, testStore())

	answer := s.Synthesize(context.Background(), "namespace_001", "query")
	assert.Equal(t, "Error: backend unavailable", answer)
}
