package service

import (
	"context"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
)

type appInfoService struct {
	buildInfo  models.AppBuildInfo
	production bool

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo:  buildInfo,
		production: cfg.Production,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) IsProduction(ctx context.Context) bool {
	return s.production
}
