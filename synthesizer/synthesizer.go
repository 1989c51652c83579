//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package synthesizer produces answers grounded in one retrieved namespace
// record. Grounding uses the complete record, not just the summary fields,
// so the backend cannot drift beyond the namespace's actual content.
package synthesizer

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// notFoundFormat is the deterministic message returned for an id absent
// from the store. It travels through the normal return channel; callers
// cannot structurally distinguish it from a grounded answer.
const notFoundFormat = "Error: Could not find data for namespace %s"

// errorPrefix marks backend failures conflated into the returned text.
const errorPrefix = "Error: "

const defaultName = "namespace-synthesizer"

// instruction is the fixed system instruction for grounded synthesis.
const instruction = `You are a knowledgeable educational response agent.

Your task:
1. You will receive namespace data and the original user query
2. The namespace contains comprehensive knowledge on a specific subject
3. Carefully analyze what the user is asking
4. Extract and synthesize relevant information from the namespace description and content
5. Provide a clear, accurate, and educational response
6. If the query asks for specific formulas, steps, or examples, provide them
7. Structure your response in a user-friendly, easy-to-understand manner

Response Guidelines:
- Be comprehensive but concise
- Use examples when helpful
- Break down complex concepts into simpler terms
- If the data covers the topic generally but not the specific question, provide the closest relevant information
- Format your response with proper structure (use line breaks for readability)
- Be educational and helpful in tone`

// promptTemplate embeds the query and the full serialized record.
const promptTemplate = `
User Query: %s

Namespace Data:
%s

Based on the namespace data above, provide a comprehensive answer to the user's query.`

// Synthesizer answers a query from the content of one namespace record.
type Synthesizer struct {
	backend   model.Model
	store     *knowledge.Store
	name      string
	genConfig model.GenerationConfig
}

// New creates a synthesizer over the given backend and store.
func New(backend model.Model, store *knowledge.Store, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		backend: backend,
		store:   store,
		name:    defaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize looks up the namespace and produces a grounded answer with one
// backend call. An unknown id yields the deterministic not-found message;
// backend failures are conflated into the returned text.
func (s *Synthesizer) Synthesize(ctx context.Context, namespaceID, query string) string {
	ns, ok := s.store.Lookup(namespaceID)
	if !ok {
		return fmt.Sprintf(notFoundFormat, namespaceID)
	}
	record, err := ns.Serialize()
	if err != nil {
		log.Errorf("error in %s: %v", s.name, err)
		return errorPrefix + err.Error()
	}
	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(instruction),
			model.NewUserMessage(fmt.Sprintf(promptTemplate, query, record)),
		},
		GenerationConfig: s.genConfig,
	}
	response, err := s.backend.GenerateContent(ctx, request)
	if err != nil {
		log.Errorf("error in %s: %v", s.name, err)
		return errorPrefix + err.Error()
	}
	return response.Text()
}
