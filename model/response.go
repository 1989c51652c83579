//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package model

import (
	"strings"
	"time"
)

// Choice represents a single completion choice.
type Choice struct {
	// Index is the index of the choice.
	Index int `json:"index"`

	// Message is the message content.
	Message Message `json:"message,omitempty"`

	// FinishReason is the reason the choice was finished.
	// "stop", "length", "content_filter", etc.
	FinishReason *string `json:"finish_reason,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens in the response.
	TotalTokens int `json:"total_tokens"`
}

// Response is the response from the generation backend.
type Response struct {
	// ID is the backend-assigned identifier of the completion, if any.
	ID string `json:"id,omitempty"`

	// Model is the name of the model that produced the completion.
	Model string `json:"model,omitempty"`

	// Choices holds the completion choices. This system only ever consumes
	// the first one.
	Choices []Choice `json:"choices,omitempty"`

	// Usage contains token usage information when the backend reports it.
	Usage *Usage `json:"usage,omitempty"`

	// Timestamp is the local time the response was assembled.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Text returns the content of the first choice with surrounding whitespace
// removed, or the empty string when the response carries no choices.
func (r *Response) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Choices[0].Message.Content)
}
