package models

import "github.com/google/uuid"

// NewItemInput is the body of POST /api/v1/items.
type NewItemInput struct {
	// Name of the item. Required.
	Name string `json:"name"`

	// Details is optional.
	Details *string `json:"details,omitempty"`
}

// UpdateItemInput is the body of PATCH /api/v1/items/{name}.
//
// Only non-nil fields are applied. An explicit JSON null decodes to nil and is
// therefore treated exactly like an absent field.
type UpdateItemInput struct {
	// ID selects the item to update. When nil the item named in the URL path
	// is used.
	ID *uuid.UUID `json:"id,omitempty"`

	// Name is the new name. If nil, the field will not be updated.
	Name *string `json:"name,omitempty"`

	// Details is the new details text. If nil, the field will not be updated.
	Details *string `json:"details,omitempty"`
}

// ToItemUpdate builds the store-level update for the item with the given id.
func (in UpdateItemInput) ToItemUpdate(id uuid.UUID) ItemUpdate {
	return ItemUpdate{
		ID:      id,
		Name:    in.Name,
		Details: in.Details,
	}
}
