package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
)

// ItemService is the business layer of the items resource. Every method runs
// on the caller's session and never commits or rolls back on its own.
type ItemService interface {
	ListItems(ctx context.Context, s store.Session) ([]models.Item, error)
	GetItem(ctx context.Context, s store.Session, name string) (models.Item, error)
	CreateItem(ctx context.Context, s store.Session, input models.NewItemInput) (models.Item, error)
	UpdateItem(ctx context.Context, s store.Session, id uuid.UUID, input models.UpdateItemInput) (models.Item, error)
	DeleteItem(ctx context.Context, s store.Session, name string) error
	CheckDatabase(ctx context.Context, s store.Session) error
}

// AppInfoService exposes process-level facts to the handlers.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	IsProduction(ctx context.Context) bool
}

// IDGenerator issues identifiers for new items.
type IDGenerator interface {
	Generate() uuid.UUID
}
