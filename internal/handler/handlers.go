package handler

import (
	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/handler/http"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/ratelimit"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions store.SessionProvider, limiter *ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
