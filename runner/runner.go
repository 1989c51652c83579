//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package runner implements the command surface: one-shot batch queries and
// an interactive loop. Queries run strictly one at a time; a failure inside
// one query is isolated at the loop boundary and the loop continues.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/orchestrator"
)

const (
	prompt      = "Query: "
	banner      = "\nNamespace Router - Interactive Mode\nType 'exit' to quit"
	farewell    = "Goodbye!"
	errorFormat = "Error: %v\n\n"
)

// exitWords end the interactive loop, case-insensitively.
var exitWords = map[string]bool{"exit": true, "quit": true, "q": true}

// Runner drives the orchestrator from a line-oriented front end.
type Runner struct {
	orchestrator *orchestrator.Orchestrator
	in           io.Reader
	out          io.Writer
	synthesize   bool
}

// New creates a runner over the given orchestrator.
func New(o *orchestrator.Orchestrator, opts ...Option) *Runner {
	r := &Runner{
		orchestrator: o,
		in:           os.Stdin,
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunBatch processes the trailing command-line arguments as one query.
func (r *Runner) RunBatch(ctx context.Context, args []string) {
	r.processQuery(ctx, strings.Join(args, " "))
}

// RunInteractive reads queries line by line until an exit word or context
// cancellation. Blank lines are ignored. Cancellation (e.g. an interrupt)
// prints the farewell, mirroring a typed exit.
func (r *Runner) RunInteractive(ctx context.Context) error {
	fmt.Fprintf(r.out, "%s\n\n", banner)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(r.out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\n"+farewell)
			return nil
		case line, ok := <-lines:
			if !ok {
				// Input exhausted (EOF or read failure).
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				fmt.Fprintln(r.out, farewell)
				return nil
			}
			query := strings.TrimSpace(line)
			if query == "" {
				continue
			}
			if exitWords[strings.ToLower(query)] {
				fmt.Fprintln(r.out, farewell)
				return nil
			}
			r.processQuery(ctx, query)
		}
	}
}

// processQuery runs one query through the pipeline. Any failure is caught
// here, logged, and reported on the output; it never escapes to the caller,
// so the interactive loop survives it.
func (r *Runner) processQuery(ctx context.Context, query string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("query processing failed: %v", rec)
			fmt.Fprintf(r.out, errorFormat, rec)
		}
	}()
	if !r.synthesize {
		r.orchestrator.ProcessQuery(ctx, query)
		return
	}
	result, err := r.orchestrator.Answer(ctx, query)
	if err != nil {
		log.Errorf("query processing failed: %v", err)
		fmt.Fprintf(r.out, errorFormat, err)
		return
	}
	for _, answer := range result.Answers {
		fmt.Fprintf(r.out, "\n[%s]\n%s\n", answer.NamespaceID, answer.Text)
	}
}
