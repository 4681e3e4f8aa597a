// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and transport types shared between the
// store, service, handler and adapter layers.
package models

import "github.com/google/uuid"

// Item is the single persisted resource of the service.
type Item struct {
	// ID is generated on creation and never changes or gets reused.
	ID uuid.UUID `json:"id"`

	// Name identifies the item in the API. It is required and unique.
	Name string `json:"name"`

	// Details is optional free text. Nil means the column is NULL.
	Details *string `json:"details"`
}

// ItemUpdate is the store-level partial update of a single item.
// Only non-nil fields are written.
type ItemUpdate struct {
	ID      uuid.UUID
	Name    *string
	Details *string
}

// HasChanges reports whether the update touches at least one column.
func (u ItemUpdate) HasChanges() bool {
	return u.Name != nil || u.Details != nil
}

// ToResponse converts the item into its API shape.
func (i Item) ToResponse() ItemResponse {
	return ItemResponse{
		Name:    i.Name,
		Details: i.Details,
	}
}

// ToResponses converts a slice of items into API shapes. It never returns nil
// so an empty table is rendered as [] rather than null.
func ToResponses(items []Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse())
	}
	return responses
}
