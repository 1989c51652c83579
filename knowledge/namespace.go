//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package knowledge provides the namespace store the router matches
// queries against. The store is built once at startup and is read-only
// afterwards.
package knowledge

import (
	"encoding/json"
	"fmt"
)

// JSON keys with fixed meaning in a namespace record. Everything else is
// opaque payload.
const (
	keyNamespaceID = "namespace_id"
	keyTitle       = "title"
	keyDescription = "description"
)

// fieldPlaceholder substitutes an absent id, title or description in
// summary renderings.
const fieldPlaceholder = "N/A"

// Namespace is one knowledge-base entry. ID, Title and Description are the
// summary fields; Payload carries every other field of the source record,
// preserved verbatim.
type Namespace struct {
	ID          string
	Title       string
	Description string
	Payload     map[string]any
}

// UnmarshalJSON decodes a namespace record, splitting the summary fields
// from the open-ended payload.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Namespace{}
	for key, value := range raw {
		switch key {
		case keyNamespaceID:
			if err := json.Unmarshal(value, &n.ID); err != nil {
				return fmt.Errorf("decode %s: %w", keyNamespaceID, err)
			}
		case keyTitle:
			if err := json.Unmarshal(value, &n.Title); err != nil {
				return fmt.Errorf("decode %s: %w", keyTitle, err)
			}
		case keyDescription:
			if err := json.Unmarshal(value, &n.Description); err != nil {
				return fmt.Errorf("decode %s: %w", keyDescription, err)
			}
		default:
			var field any
			if err := json.Unmarshal(value, &field); err != nil {
				return fmt.Errorf("decode payload field %s: %w", key, err)
			}
			if n.Payload == nil {
				n.Payload = make(map[string]any)
			}
			n.Payload[key] = field
		}
	}
	return nil
}

// MarshalJSON re-assembles the full record, summary fields and payload
// merged back into a single object.
func (n *Namespace) MarshalJSON() ([]byte, error) {
	record := make(map[string]any, len(n.Payload)+3)
	for key, value := range n.Payload {
		record[key] = value
	}
	record[keyNamespaceID] = n.ID
	record[keyTitle] = n.Title
	record[keyDescription] = n.Description
	return json.Marshal(record)
}

// Serialize renders the complete record as indented JSON for embedding into
// a synthesis prompt. No field of the source record is dropped.
func (n *Namespace) Serialize() (string, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize namespace %s: %w", n.ID, err)
	}
	return string(data), nil
}

// Summary renders the id, title and description block used to describe this
// namespace to the matcher. Absent fields render as N/A.
func (n *Namespace) Summary() string {
	return fmt.Sprintf("Namespace ID: %s\nTitle: %s\nDescription: %s",
		orPlaceholder(n.ID), orPlaceholder(n.Title), orPlaceholder(n.Description))
}

func orPlaceholder(s string) string {
	if s == "" {
		return fieldPlaceholder
	}
	return s
}
