//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"net/http"

	openaiopt "github.com/openai/openai-go/option"
)

// options contains configuration options for creating an OpenAI model.
type options struct {
	// apiKey overrides the OPENAI_API_KEY environment variable.
	apiKey string
	// baseURL points the client at an OpenAI-compatible endpoint.
	baseURL string
	// httpClient replaces the default HTTP client.
	httpClient *http.Client
	// requestOptions are passed through to the underlying SDK client.
	requestOptions []openaiopt.RequestOption
}

var defaultOptions = options{}

// Option is a function that configures an OpenAI model.
type Option func(*options)

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL sets the base URL of an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRequestOptions appends raw SDK request options.
func WithRequestOptions(opts ...openaiopt.RequestOption) Option {
	return func(o *options) {
		o.requestOptions = append(o.requestOptions, opts...)
	}
}
