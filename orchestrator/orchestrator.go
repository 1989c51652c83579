//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package orchestrator sequences the routing pipeline: intake, namespace
// matching, result reporting, and (when enabled explicitly) grounded
// synthesis over the matched namespaces.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/matcher"
	"trpc.group/trpc-go/trpc-namespace-router/synthesizer"
	"trpc.group/trpc-go/trpc-namespace-router/telemetry"
)

// State tracks how far a query travelled through the pipeline.
type State string

// Pipeline states. Matched and Unmatched are terminal for ProcessQuery;
// Synthesized is reached only through Answer.
const (
	StateReceived    State = "received"
	StateForwarded   State = "forwarded"
	StateMatched     State = "matched"
	StateUnmatched   State = "unmatched"
	StateSynthesized State = "synthesized"
)

// Stdout contract lines.
const (
	matchedFormat  = "Matching Namespaces: %s\n"
	noNamespaceMsg = "This query has no namespace"
)

// defaultParallelism bounds the synthesis fan-out pool.
const defaultParallelism = 4

// Answer pairs a matched namespace id with the text synthesized from it.
type Answer struct {
	NamespaceID string
	Text        string
}

// Result is the outcome of one query cycle.
type Result struct {
	// InvocationID identifies this cycle in logs and traces.
	InvocationID string
	// Query is the original query.
	Query string
	// State is the terminal pipeline state.
	State State
	// NamespaceIDs holds the matched ids when State is StateMatched or
	// StateSynthesized.
	NamespaceIDs []string
	// Answers holds per-namespace synthesized answers, populated only by
	// Answer.
	Answers []Answer
}

// Matched reports whether the matcher produced namespace ids rather than
// the no-match sentinel.
func (r *Result) Matched() bool {
	return r.State == StateMatched || r.State == StateSynthesized
}

// Orchestrator wires the pipeline stages together. The matcher stage is
// always invoked; the synthesizer stage only runs through Answer and only
// when one was configured.
type Orchestrator struct {
	intake      Intake
	matcher     *matcher.Matcher
	synthesizer *synthesizer.Synthesizer
	out         io.Writer
	parallelism int
	pool        *ants.Pool
}

// New creates an orchestrator over the given matcher.
func New(m *matcher.Matcher, opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		matcher:     m,
		out:         os.Stdout,
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.synthesizer != nil {
		pool, err := ants.NewPool(o.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create synthesis pool: %w", err)
		}
		o.pool = pool
	}
	return o, nil
}

// Close releases the synthesis pool, if any.
func (o *Orchestrator) Close() {
	if o.pool != nil {
		o.pool.Release()
	}
}

// ProcessQuery runs intake and matching for one query and reports the
// outcome on the configured output. It returns the match result; it never
// invokes the synthesizer.
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string) *Result {
	result := &Result{
		InvocationID: uuid.New().String(),
		Query:        query,
		State:        StateReceived,
	}
	ctx, span := telemetry.Tracer.Start(ctx, "orchestrator.process_query",
		trace.WithAttributes(
			attribute.String(telemetry.KeyInvocationID, result.InvocationID),
			attribute.Int(telemetry.KeyQueryLength, len(query)),
		))
	defer span.End()

	forwarded := o.intake.Forward(query)
	result.State = StateForwarded
	log.Debugf("invocation %s: query forwarded to analysis", result.InvocationID)

	match := o.matcher.Match(ctx, forwarded)
	if !match.Matched {
		result.State = StateUnmatched
		span.SetAttributes(attribute.Bool(telemetry.KeyMatched, false))
		fmt.Fprintln(o.out, noNamespaceMsg)
		return result
	}
	result.State = StateMatched
	result.NamespaceIDs = match.NamespaceIDs
	span.SetAttributes(
		attribute.Bool(telemetry.KeyMatched, true),
		attribute.Int(telemetry.KeyNamespaceCount, len(match.NamespaceIDs)),
	)
	fmt.Fprintf(o.out, matchedFormat, strings.Join(match.NamespaceIDs, ", "))
	return result
}

// Answer runs the full pipeline: ProcessQuery, then one synthesis call per
// matched namespace. The per-namespace calls share no mutable state, so
// they are dispatched concurrently through the pool and joined in match
// order before returning.
func (o *Orchestrator) Answer(ctx context.Context, query string) (*Result, error) {
	if o.synthesizer == nil {
		return nil, fmt.Errorf("no synthesizer configured")
	}
	result := o.ProcessQuery(ctx, query)
	if result.State != StateMatched {
		return result, nil
	}
	ctx, span := telemetry.Tracer.Start(ctx, "orchestrator.synthesize",
		trace.WithAttributes(
			attribute.String(telemetry.KeyInvocationID, result.InvocationID),
			attribute.Int(telemetry.KeyNamespaceCount, len(result.NamespaceIDs)),
		))
	defer span.End()

	answers := make([]Answer, len(result.NamespaceIDs))
	var wg sync.WaitGroup
	for i, id := range result.NamespaceIDs {
		wg.Add(1)
		submitErr := o.pool.Submit(func() {
			defer wg.Done()
			answers[i] = Answer{
				NamespaceID: id,
				Text:        o.synthesizer.Synthesize(ctx, id, query),
			}
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("submit synthesis task for %s: %w", id, submitErr)
		}
	}
	wg.Wait()
	result.Answers = answers
	result.State = StateSynthesized
	return result, nil
}
