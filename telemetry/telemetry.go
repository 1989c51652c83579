//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package telemetry provides OpenTelemetry tracing setup. Without Start the
// package-level tracer is a no-op, so instrumented code needs no guards.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentName is the instrumentation scope of all spans in this module.
const InstrumentName = "trpc.group/trpc-go/trpc-namespace-router"

// Span attribute keys.
const (
	KeyInvocationID   = "router.invocation_id"
	KeyQueryLength    = "router.query_length"
	KeyMatched        = "router.matched"
	KeyNamespaceCount = "router.namespace_count"
	KeyNamespaceID    = "router.namespace_id"
)

// Tracer is the tracer used across the module. It is a no-op until Start
// installs a real provider.
var Tracer trace.Tracer = otel.Tracer(InstrumentName)

// Start installs a tracer provider exporting OTLP over HTTP and returns a
// shutdown function flushing pending spans.
func Start(ctx context.Context, opts ...Option) (func(context.Context) error, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	exporterOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(o.endpoint),
	}
	if o.insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", o.serviceName)),
	)
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	Tracer = provider.Tracer(InstrumentName)
	return provider.Shutdown, nil
}
