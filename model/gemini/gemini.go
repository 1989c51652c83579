//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package gemini provides a Gemini-backed generation model.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// Model implements the model.Model interface for the Gemini API.
type Model struct {
	client Client
	name   string
}

// New creates a new Gemini model.
func New(ctx context.Context, name string, opts ...Option) (*Model, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	client, err := genai.NewClient(ctx, o.clientConfig)
	if err != nil {
		return nil, model.NewBackendError(model.ErrorTypeTransport, err)
	}
	return &Model{
		client: &clientWrapper{client: client},
		name:   name,
	}, nil
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
	contents := convertMessages(request.Messages)
	config := buildGenerateConfig(request)
	completion, err := m.client.Models().GenerateContent(ctx, m.name, contents, config)
	if err != nil {
		return nil, model.NewBackendError(classifyError(err), err)
	}
	return buildResponse(m.name, completion)
}

// convertMessages converts non-system messages to genai contents. The system
// message travels separately as the SystemInstruction of the config.
func convertMessages(messages []model.Message) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		}
	}
	return contents
}

// buildGenerateConfig maps the request parameters onto the genai config.
func buildGenerateConfig(request *model.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if instruction := request.SystemInstruction(); instruction != "" {
		config.SystemInstruction = genai.NewContentFromText(instruction, genai.RoleUser)
	}
	if request.GenerationConfig.Temperature != nil {
		t := float32(*request.GenerationConfig.Temperature)
		config.Temperature = &t
	}
	if request.GenerationConfig.MaxTokens != nil {
		config.MaxOutputTokens = int32(*request.GenerationConfig.MaxTokens)
	}
	return config
}

// buildResponse converts a genai completion into a model.Response.
func buildResponse(name string, completion *genai.GenerateContentResponse) (*model.Response, error) {
	if completion == nil || len(completion.Candidates) == 0 {
		return nil, model.NewBackendError(
			model.ErrorTypeMalformed, errors.New("completion carries no candidates"))
	}
	response := &model.Response{
		ID:        completion.ResponseID,
		Model:     name,
		Timestamp: time.Now(),
	}
	for i, candidate := range completion.Candidates {
		choice := model.Choice{
			Index: i,
			Message: model.Message{
				Role:    model.RoleAssistant,
				Content: candidateText(candidate),
			},
		}
		if candidate.FinishReason != "" {
			choice.FinishReason = model.StringPtr(string(candidate.FinishReason))
		}
		response.Choices = append(response.Choices, choice)
	}
	if usage := completion.UsageMetadata; usage != nil {
		response.Usage = &model.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return response, nil
}

// candidateText concatenates the text parts of a candidate.
func candidateText(candidate *genai.Candidate) string {
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// classifyError maps a genai API error onto a BackendError type.
func classifyError(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return model.ErrorTypeQuota
		}
		return model.ErrorTypeAPI
	}
	return model.ErrorTypeTransport
}
