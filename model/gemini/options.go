//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package gemini

import "google.golang.org/genai"

// options contains configuration options for creating a Gemini model.
type options struct {
	// clientConfig for building the genai client. Nil lets the SDK pick up
	// its configuration from the environment (GOOGLE_API_KEY).
	clientConfig *genai.ClientConfig
}

var defaultOptions = options{}

// Option is a function that configures a Gemini model.
type Option func(*options)

// WithClientConfig sets the full genai client configuration.
func WithClientConfig(config *genai.ClientConfig) Option {
	return func(o *options) {
		o.clientConfig = config
	}
}

// WithAPIKey sets the API key used against the Gemini API backend.
func WithAPIKey(key string) Option {
	return func(o *options) {
		if o.clientConfig == nil {
			o.clientConfig = &genai.ClientConfig{}
		}
		o.clientConfig.APIKey = key
		o.clientConfig.Backend = genai.BackendGeminiAPI
	}
}
