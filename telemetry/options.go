//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package telemetry

// options contains configuration options for tracing setup.
type options struct {
	// endpoint is the OTLP HTTP collector endpoint, host:port.
	endpoint string
	// serviceName identifies this process in exported spans.
	serviceName string
	// insecure disables TLS towards the collector.
	insecure bool
}

var defaultOptions = options{
	endpoint:    "localhost:4318",
	serviceName: "trpc-namespace-router",
	insecure:    true,
}

// Option is a function that configures tracing setup.
type Option func(*options)

// WithEndpoint sets the OTLP HTTP collector endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithServiceName sets the service name attached to exported spans.
func WithServiceName(name string) Option {
	return func(o *options) {
		o.serviceName = name
	}
}

// WithInsecure toggles TLS towards the collector.
func WithInsecure(insecure bool) Option {
	return func(o *options) {
		o.insecure = insecure
	}
}
