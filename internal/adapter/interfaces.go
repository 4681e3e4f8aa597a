// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the items-api HTTP interface.
//
// The primary abstraction is [ItemsAdapter], which hides the REST transport
// from callers such as the command-line client. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/items-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ItemsAdapter defines communication with an items-api server.
type ItemsAdapter interface {
	// List returns every stored item.
	List(ctx context.Context) ([]models.ItemResponse, error)

	// Get returns the item with the given name or [ErrNotFound].
	Get(ctx context.Context, name string) (models.ItemResponse, error)

	// Create stores a new item. A duplicate name yields [ErrConflict].
	Create(ctx context.Context, input models.NewItemInput) (models.ItemResponse, error)

	// Update applies the non-nil fields of input to the item with the given
	// name and returns the result.
	Update(ctx context.Context, name string, input models.UpdateItemInput) (models.ItemResponse, error)

	// Delete removes the item with the given name.
	Delete(ctx context.Context, name string) error

	// Health reports the server's database status. A reachable server
	// always answers, so a nil error does not imply Status == "ok".
	Health(ctx context.Context) (models.HealthResponse, error)
}
