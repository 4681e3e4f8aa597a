package http

import (
	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/ratelimit"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
)

type Handler struct {
	services *service.Services
	sessions store.SessionProvider
	limiter  *ratelimit.Limiter

	cfg    config.StructuredConfig
	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, sessions store.SessionProvider, limiter *ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
	}
}
