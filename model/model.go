//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package model provides the generation backend contract used by the
// routing and synthesis components.
package model

import "context"

// Info describes basic information about a model.
type Info struct {
	// Name is the name of the model.
	Name string
}

// Model is the interface for all generation backends.
//
// Calls are synchronous: GenerateContent blocks until the backend returns a
// complete response or fails. Cancellation is delegated to the context.
type Model interface {
	// GenerateContent produces a completion for the given request.
	GenerateContent(ctx context.Context, request *Request) (*Response, error)

	// Info returns basic information about the model.
	Info() Info
}
