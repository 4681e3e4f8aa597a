package service

import (
	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/internal/validators"
	"github.com/MKhiriev/items-api/models"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ItemService: NewItemService(
			repositories.ItemRepository,
			validators.NewItemValidator(),
			utils.NewUUIDGenerator(),
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
