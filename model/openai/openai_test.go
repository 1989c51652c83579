//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// mockCompletionClient implements completionClient for testing.
type mockCompletionClient struct {
	completion *openai.ChatCompletion
	err        error
	gotParams  openai.ChatCompletionNewParams
}

func (m *mockCompletionClient) New(_ context.Context, params openai.ChatCompletionNewParams,
	_ ...openaiopt.RequestOption) (*openai.ChatCompletion, error) {
	m.gotParams = params
	return m.completion, m.err
}

func TestGenerateContent(t *testing.T) {
	client := &mockCompletionClient{
		completion: &openai.ChatCompletion{
			ID:    "cmpl-1",
			Model: "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index:        0,
					Message:      openai.ChatCompletionMessage{Content: " namespace_001 "},
					FinishReason: "stop",
				},
			},
			Usage: openai.CompletionUsage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
		},
	}
	m := &Model{client: client, name: "gpt-4o-mini"}

	resp, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage("route the query"),
			model.NewUserMessage("User Query: what is inertia?"),
		},
		GenerationConfig: model.GenerationConfig{
			MaxTokens:   model.IntPtr(64),
			Temperature: model.Float64Ptr(0.1),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "namespace_001", resp.Text())
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 13, resp.Usage.TotalTokens)

	require.Len(t, client.gotParams.Messages, 2)
	assert.Equal(t, int64(64), client.gotParams.MaxCompletionTokens.Value)
	assert.InDelta(t, 0.1, client.gotParams.Temperature.Value, 1e-6)
}

func TestGenerateContentNilRequest(t *testing.T) {
	m := &Model{client: &mockCompletionClient{}, name: "gpt-4o-mini"}
	_, err := m.GenerateContent(context.Background(), nil)
	require.Error(t, err)
}

func TestGenerateContentBackendError(t *testing.T) {
	client := &mockCompletionClient{err: errors.New("connection refused")}
	m := &Model{client: client, name: "gpt-4o-mini"}

	_, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("hello")},
	})
	var backendErr *model.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, model.ErrorTypeTransport, backendErr.Type)
}

func TestGenerateContentEmptyCompletion(t *testing.T) {
	client := &mockCompletionClient{completion: &openai.ChatCompletion{}}
	m := &Model{client: client, name: "gpt-4o-mini"}

	_, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("hello")},
	})
	var backendErr *model.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, model.ErrorTypeMalformed, backendErr.Type)
}

func TestNewAppliesOptions(t *testing.T) {
	m := New("gpt-4o-mini", WithAPIKey("test-key"), WithBaseURL("http://localhost:8000/v1"))
	require.NotNil(t, m)
	assert.Equal(t, "gpt-4o-mini", m.Info().Name)
}
