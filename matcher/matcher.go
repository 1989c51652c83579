//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package matcher routes a query to the knowledge namespaces it belongs to.
// The semantic judgment is delegated entirely to the generation backend;
// this package owns the routing instruction and the grammar applied to the
// backend's raw response.
package matcher

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/model"
)

// Sentinel is the literal marker the backend emits when no namespace
// matches. Detection is a substring test on the uppercased response, so
// surrounding prose does not defeat it.
const Sentinel = "NO_NAMESPACE_FOUND"

// errorPrefix marks backend failures conflated into the response text.
// Callers cannot structurally distinguish such text from a legitimate
// response; this conflation is a preserved, tested behavior.
const errorPrefix = "Error: "

const defaultName = "namespace-matcher"

// instructionTemplate carries the routing rules. The rendered namespace
// summaries are interpolated once at construction.
const instructionTemplate = `You are an expert semantic analysis agent specializing in query understanding and intelligent routing.

Your task:
1. Carefully analyze the USER'S QUERY to understand their intent, topic, and what information they're seeking
2. Review ALL available knowledge namespaces below
3. Identify ALL namespaces that contain relevant information for the query
4. A query may match MULTIPLE namespaces if the same information exists in different namespaces
5. If the query does NOT match ANY namespace, output exactly: "NO_NAMESPACE_FOUND"
6. Otherwise output ALL matching namespace_ids separated by commas

Available Knowledge Namespaces:
%s

CRITICAL RULES:
- Output ALL relevant namespace_ids separated by commas (example: namespace_001,namespace_009,namespace_010)
- OR output "NO_NAMESPACE_FOUND" if no matches
- No explanations, no extra text, no spaces around commas
- If multiple namespaces have the same title/description and are relevant, include ALL of them
- Example outputs:
  * Single match: namespace_001
  * Multiple matches: namespace_001,namespace_009,namespace_010
  * No match: NO_NAMESPACE_FOUND`

// Result is the outcome of one match call: either an ordered,
// non-deduplicated id list in backend emission order, or no match.
// Ids are not validated against the store.
type Result struct {
	// NamespaceIDs holds the matched ids when Matched is true.
	NamespaceIDs []string
	// Matched distinguishes an id list from the no-match outcome.
	Matched bool
}

// Matcher performs multi-label matching of a query against namespace
// summaries through the generation backend.
type Matcher struct {
	backend     model.Model
	name        string
	instruction string
	genConfig   model.GenerationConfig
}

// New creates a matcher whose routing instruction embeds the summaries of
// every namespace in the store. The instruction is built once; later store
// contents are never re-read.
func New(backend model.Model, store *knowledge.Store, opts ...Option) *Matcher {
	m := &Matcher{
		backend:     backend,
		name:        defaultName,
		instruction: fmt.Sprintf(instructionTemplate, store.Summaries()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Instruction returns the fixed routing instruction.
func (m *Matcher) Instruction() string {
	return m.instruction
}

// Match issues exactly one backend call for the query and applies the
// routing grammar to the response. Backend failures are conflated into the
// response text and parsed like any other response.
func (m *Matcher) Match(ctx context.Context, query string) Result {
	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(m.instruction),
			model.NewUserMessage("User Query: " + query),
		},
		GenerationConfig: m.genConfig,
	}
	text := ""
	response, err := m.backend.GenerateContent(ctx, request)
	if err != nil {
		log.Errorf("error in %s: %v", m.name, err)
		text = errorPrefix + err.Error()
	} else {
		text = response.Text()
	}
	return Parse(text)
}

// Parse applies the routing grammar to a raw backend response:
//  1. a response whose uppercased text contains the sentinel anywhere is a
//     no-match;
//  2. anything else is split on commas, each piece trimmed, and returned in
//     emission order with no deduplication and no validation.
func Parse(text string) Result {
	if strings.Contains(strings.ToUpper(text), Sentinel) {
		return Result{}
	}
	pieces := strings.Split(text, ",")
	ids := make([]string, len(pieces))
	for i, piece := range pieces {
		ids[i] = strings.TrimSpace(piece)
	}
	return Result{NamespaceIDs: ids, Matched: true}
}
