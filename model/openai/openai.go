//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible generation model.
// It works against any endpoint that speaks the chat completions protocol.
package openai

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// Model implements the model.Model interface for OpenAI-compatible APIs.
type Model struct {
	client completionClient
	name   string
}

// completionClient is the slice of the OpenAI client this model needs.
// It exists so tests can substitute a canned implementation.
type completionClient interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams,
		opts ...openaiopt.RequestOption) (*openai.ChatCompletion, error)
}

// New creates a new OpenAI-compatible model.
func New(name string, opts ...Option) *Model {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	var clientOpts []openaiopt.RequestOption
	if o.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(o.apiKey))
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, openaiopt.WithHTTPClient(o.httpClient))
	}
	clientOpts = append(clientOpts, o.requestOptions...)
	client := openai.NewClient(clientOpts...)
	return &Model{
		client: &client.Chat.Completions,
		name:   name,
	}
}

// Info implements the model.Model interface.
func (m *Model) Info() model.Info {
	return model.Info{
		Name: m.name,
	}
}

// GenerateContent implements the model.Model interface.
func (m *Model) GenerateContent(
	ctx context.Context,
	request *model.Request,
) (*model.Response, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	chatRequest := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(m.name),
		Messages: convertMessages(request.Messages),
	}
	if request.GenerationConfig.MaxTokens != nil {
		chatRequest.MaxCompletionTokens = openai.Int(int64(*request.GenerationConfig.MaxTokens))
	}
	if request.GenerationConfig.Temperature != nil {
		chatRequest.Temperature = openai.Float(*request.GenerationConfig.Temperature)
	}
	chatCompletion, err := m.client.New(ctx, chatRequest)
	if err != nil {
		return nil, model.NewBackendError(classifyError(err), err)
	}
	return buildResponse(chatCompletion)
}

// convertMessages converts our Message format to OpenAI's format.
func convertMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			result[i] = openai.SystemMessage(msg.Content)
		case model.RoleAssistant:
			result[i] = openai.AssistantMessage(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}
	return result
}

// buildResponse converts a chat completion into a model.Response.
func buildResponse(chatCompletion *openai.ChatCompletion) (*model.Response, error) {
	if chatCompletion == nil || len(chatCompletion.Choices) == 0 {
		return nil, model.NewBackendError(
			model.ErrorTypeMalformed, errors.New("completion carries no choices"))
	}
	response := &model.Response{
		ID:        chatCompletion.ID,
		Model:     chatCompletion.Model,
		Timestamp: time.Now(),
	}
	for _, choice := range chatCompletion.Choices {
		finishReason := choice.FinishReason
		response.Choices = append(response.Choices, model.Choice{
			Index: int(choice.Index),
			Message: model.Message{
				Role:    model.RoleAssistant,
				Content: choice.Message.Content,
			},
			FinishReason: model.StringPtr(finishReason),
		})
	}
	response.Usage = &model.Usage{
		PromptTokens:     int(chatCompletion.Usage.PromptTokens),
		CompletionTokens: int(chatCompletion.Usage.CompletionTokens),
		TotalTokens:      int(chatCompletion.Usage.TotalTokens),
	}
	return response, nil
}

// classifyError maps an OpenAI API error onto a BackendError type.
func classifyError(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return model.ErrorTypeQuota
		}
		return model.ErrorTypeAPI
	}
	return model.ErrorTypeTransport
}
