package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	itemsPath  = "/api/v1/items"
	itemPath   = "/api/v1/items/{name}"
	healthPath = "/healthz"
)

type httpItemsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPItemsAdapter constructs the REST implementation of [ItemsAdapter].
// It normalises the base URL from cfg.HTTPAddress (a bare host:port gets an
// http:// scheme) and applies cfg.RequestTimeout to every request.
func NewHTTPItemsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ItemsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetLogger(restyLogger{logger}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("response received")
			return nil
		})

	return &httpItemsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpItemsAdapter) List(ctx context.Context) ([]models.ItemResponse, error) {
	var items []models.ItemResponse

	resp, err := h.request(ctx).
		SetResult(&items).
		Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpItemsAdapter) Get(ctx context.Context, name string) (models.ItemResponse, error) {
	var item models.ItemResponse

	resp, err := h.request(ctx).
		SetPathParam("name", name).
		SetResult(&item).
		Get(itemPath)
	if err != nil {
		return item, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	return item, nil
}

func (h *httpItemsAdapter) Create(ctx context.Context, input models.NewItemInput) (models.ItemResponse, error) {
	var item models.ItemResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&item).
		Post(itemsPath)
	if err != nil {
		return item, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	return item, nil
}

func (h *httpItemsAdapter) Update(ctx context.Context, name string, input models.UpdateItemInput) (models.ItemResponse, error) {
	var item models.ItemResponse

	resp, err := h.request(ctx).
		SetPathParam("name", name).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&item).
		Patch(itemPath)
	if err != nil {
		return item, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	return item, nil
}

func (h *httpItemsAdapter) Delete(ctx context.Context, name string) error {
	resp, err := h.request(ctx).
		SetPathParam("name", name).
		Delete(itemPath)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpItemsAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.request(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return health, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, nil
}

func (h *httpItemsAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// restyLogger routes resty's own diagnostics into zerolog.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debug().Msgf(format, v...) }
