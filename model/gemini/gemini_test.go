//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// mockModels implements the Models interface for testing.
type mockModels struct {
	completion *genai.GenerateContentResponse
	err        error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (m *mockModels) GenerateContent(_ context.Context, name string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.gotModel = name
	m.gotContents = contents
	m.gotConfig = config
	return m.completion, m.err
}

// mockClient implements the Client interface for testing.
type mockClient struct {
	models *mockModels
}

func (c *mockClient) Models() Models {
	return c.models
}

func textCompletion(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		ResponseID: "resp-1",
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 5,
			TotalTokenCount:      17,
		},
	}
}

func TestGenerateContent(t *testing.T) {
	models := &mockModels{completion: textCompletion("namespace_001,namespace_002")}
	m := &Model{client: &mockClient{models: models}, name: "gemini-2.0-flash-exp"}

	resp, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage("route the query"),
			model.NewUserMessage("User Query: what is inertia?"),
		},
		GenerationConfig: model.GenerationConfig{
			Temperature: model.Float64Ptr(0.2),
			MaxTokens:   model.IntPtr(128),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "namespace_001,namespace_002", resp.Text())
	assert.Equal(t, "gemini-2.0-flash-exp", resp.Model)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 17, resp.Usage.TotalTokens)

	// The system message travels as the config system instruction, not as a
	// conversation content.
	require.Len(t, models.gotContents, 1)
	require.NotNil(t, models.gotConfig.SystemInstruction)
	require.NotNil(t, models.gotConfig.Temperature)
	assert.InDelta(t, 0.2, float64(*models.gotConfig.Temperature), 1e-6)
	assert.Equal(t, int32(128), models.gotConfig.MaxOutputTokens)
}

func TestGenerateContentNilRequest(t *testing.T) {
	m := &Model{client: &mockClient{models: &mockModels{}}, name: "gemini-2.0-flash-exp"}
	_, err := m.GenerateContent(context.Background(), nil)
	require.Error(t, err)
}

func TestGenerateContentBackendError(t *testing.T) {
	models := &mockModels{err: errors.New("connection reset")}
	m := &Model{client: &mockClient{models: models}, name: "gemini-2.0-flash-exp"}

	_, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("hello")},
	})
	require.Error(t, err)
	var backendErr *model.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, model.ErrorTypeTransport, backendErr.Type)
}

func TestGenerateContentEmptyCompletion(t *testing.T) {
	models := &mockModels{completion: &genai.GenerateContentResponse{}}
	m := &Model{client: &mockClient{models: models}, name: "gemini-2.0-flash-exp"}

	_, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("hello")},
	})
	var backendErr *model.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, model.ErrorTypeMalformed, backendErr.Type)
}

func TestInfo(t *testing.T) {
	m := &Model{name: "gemini-2.0-flash-exp"}
	assert.Equal(t, "gemini-2.0-flash-exp", m.Info().Name)
}
