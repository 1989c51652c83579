//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package orchestrator

// Intake is the first pipeline stage. It forwards the query untouched and
// issues no backend call; it exists as a stage so the pipeline reads as
// intake, analysis, synthesis.
type Intake struct{}

// Forward passes the query through unchanged.
func (Intake) Forward(query string) string {
	return query
}
