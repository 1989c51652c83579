//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package main is the nsrouter command. It routes free-text queries to
// knowledge-base namespaces and, optionally, synthesizes grounded answers.
//
// Required environment variables:
//   - GOOGLE_API_KEY: Gemini API key (default provider)
//   - OPENAI_API_KEY: OpenAI API key (with -provider openai)
//
// Example usage:
//
//	export GOOGLE_API_KEY=your-api-key
//	nsrouter -data dummy_data.json What is inertia?
//	nsrouter -data dummy_data.json            # interactive mode
//	nsrouter -data dummy_data.json -http :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"trpc.group/trpc-go/trpc-namespace-router/knowledge"
	"trpc.group/trpc-go/trpc-namespace-router/knowledge/source"
	dirsource "trpc.group/trpc-go/trpc-namespace-router/knowledge/source/dir"
	filesource "trpc.group/trpc-go/trpc-namespace-router/knowledge/source/file"
	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/matcher"
	"trpc.group/trpc-go/trpc-namespace-router/model"
	"trpc.group/trpc-go/trpc-namespace-router/model/gemini"
	"trpc.group/trpc-go/trpc-namespace-router/model/openai"
	"trpc.group/trpc-go/trpc-namespace-router/orchestrator"
	"trpc.group/trpc-go/trpc-namespace-router/runner"
	"trpc.group/trpc-go/trpc-namespace-router/server"
	"trpc.group/trpc-go/trpc-namespace-router/synthesizer"
	"trpc.group/trpc-go/trpc-namespace-router/telemetry"
)

// Supported providers.
const (
	providerGemini = "gemini"
	providerOpenAI = "openai"
)

// Credential environment variables per provider.
const (
	geminiAPIKeyName = "GOOGLE_API_KEY"
	openaiAPIKeyName = "OPENAI_API_KEY"
)

var (
	providerName  = flag.String("provider", providerGemini, "Generation backend: gemini|openai")
	modelName     = flag.String("model", "gemini-2.0-flash-exp", "Name of the model to use")
	dataPath      = flag.String("data", "dummy_data.json", "Path to the knowledge-store JSON file")
	dataDir       = flag.String("data-dir", "", "Load every knowledge-store file under this directory instead of -data")
	answer        = flag.Bool("answer", false, "Synthesize grounded answers for matched namespaces")
	httpAddr      = flag.String("http", "", "Serve the pipeline over HTTP on this address instead of the CLI")
	logLevel      = flag.String("log-level", log.LevelInfo, "Log level: debug|info|warn|error|fatal")
	traceEndpoint = flag.String("trace-endpoint", "", "OTLP HTTP endpoint for trace export (disabled when empty)")
)

func main() {
	flag.Parse()
	log.SetLevel(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Errorf("nsrouter: %v", err)
		os.Exit(1)
	}
}

// run wires the pipeline and drives the selected mode. Startup failures
// return an error after their diagnostic has been printed; main holds the
// only exit point.
func run(ctx context.Context) error {
	apiKey, err := checkCredential(os.Stdout, *providerName)
	if err != nil {
		return err
	}
	store, err := loadStore(ctx, os.Stdout, *dataPath, *dataDir)
	if err != nil {
		return err
	}

	if *traceEndpoint != "" {
		shutdown, err := telemetry.Start(ctx, telemetry.WithEndpoint(*traceEndpoint))
		if err != nil {
			return fmt.Errorf("start telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warnf("telemetry shutdown: %v", err)
			}
		}()
	}

	backend, err := buildBackend(ctx, os.Stdout, apiKey)
	if err != nil {
		return err
	}
	o, err := orchestrator.New(
		matcher.New(backend, store),
		orchestrator.WithSynthesizer(synthesizer.New(backend, store)),
	)
	if err != nil {
		return fmt.Errorf("build orchestrator: %w", err)
	}
	defer o.Close()

	if *httpAddr != "" {
		srv := server.New(o, server.WithAddr(*httpAddr))
		go func() {
			<-ctx.Done()
			if err := srv.Shutdown(context.Background()); err != nil {
				log.Warnf("server shutdown: %v", err)
			}
		}()
		return srv.Start()
	}

	r := runner.New(o, runner.WithSynthesis(*answer))
	if args := flag.Args(); len(args) > 0 {
		r.RunBatch(ctx, args)
		return nil
	}
	return r.RunInteractive(ctx)
}

// checkCredential verifies the provider's credential is configured. Absence
// prints a diagnostic on out and returns an error, so the process
// terminates before any query is processed.
func checkCredential(out io.Writer, provider string) (string, error) {
	keyName := geminiAPIKeyName
	if provider == providerOpenAI {
		keyName = openaiAPIKeyName
	}
	key := os.Getenv(keyName)
	if key == "" {
		fmt.Fprintf(out, "Warning: %s not found in environment variables.\n", keyName)
		fmt.Fprintf(out, "Set it with: export %s='your-api-key'\n", keyName)
		return "", fmt.Errorf("%s is not set", keyName)
	}
	return key, nil
}

// loadStore reads the knowledge store from dir when set, otherwise from
// path. A missing or unreadable store prints a diagnostic on out and
// returns an error, so the process terminates before any query is
// processed.
func loadStore(ctx context.Context, out io.Writer, path, dir string) (*knowledge.Store, error) {
	var src source.Source
	if dir != "" {
		src = dirsource.New(dir)
	} else {
		src = filesource.New(path)
	}
	namespaces, err := src.ReadNamespaces(ctx)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return nil, err
	}
	return knowledge.NewStore(namespaces), nil
}

// buildBackend constructs the configured generation backend.
func buildBackend(ctx context.Context, out io.Writer, apiKey string) (model.Model, error) {
	switch *providerName {
	case providerOpenAI:
		return openai.New(*modelName, openai.WithAPIKey(apiKey)), nil
	case providerGemini:
		backend, err := gemini.New(ctx, *modelName, gemini.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("create gemini backend: %w", err)
		}
		return backend, nil
	default:
		fmt.Fprintf(out, "Error: unknown provider %q (expected gemini or openai)\n", *providerName)
		return nil, fmt.Errorf("unknown provider %q", *providerName)
	}
}
