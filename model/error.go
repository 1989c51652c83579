//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package model

import "fmt"

// Error type constants for BackendError.Type.
const (
	// ErrorTypeTransport covers connection, TLS and timeout failures.
	ErrorTypeTransport = "transport_error"
	// ErrorTypeQuota covers rate-limit and quota exhaustion failures.
	ErrorTypeQuota = "quota_error"
	// ErrorTypeMalformed covers responses the backend SDK could not decode
	// or responses carrying no usable content.
	ErrorTypeMalformed = "malformed_response"
	// ErrorTypeAPI covers all other API-level failures.
	ErrorTypeAPI = "api_error"
)

// BackendError is the error returned by Model implementations when a
// generation call fails.
type BackendError struct {
	// Type classifies the failure, one of the ErrorType constants.
	Type string
	// Message is a human-readable description of the failure.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return e.Type
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a BackendError wrapping err.
func NewBackendError(errType string, err error) *BackendError {
	be := &BackendError{Type: errType, Err: err}
	if err != nil {
		be.Message = err.Error()
	}
	return be
}
