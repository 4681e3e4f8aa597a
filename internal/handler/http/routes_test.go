package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/ratelimit"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteRouter wires the real stack over a fresh SQLite file. The
// returned DB is closed at test cleanup.
func newSQLiteRouter(t *testing.T, rl config.RateLimit) (http.Handler, *store.DB) {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		Storage: config.Storage{
			DB: config.DB{
				DSN:             "sqlite://" + filepath.Join(t.TempDir(), "items.db"),
				PoolSize:        2,
				MaxOverflow:     2,
				ConnMaxIdleTime: time.Minute,
			},
			Redis: config.Redis{URL: "memory://"},
		},
		Server:    config.Server{RequestTimeout: 5 * time.Second},
		RateLimit: rl,
	}

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	services, err := service.NewServices(store.NewRepositories(db, log), cfg, models.NewAppBuildInfo("test", "", ""), log)
	require.NoError(t, err)

	limiter, err := ratelimit.New(ctx, cfg.RateLimit, cfg.Storage.Redis, log)
	require.NoError(t, err)

	return NewHandler(services, db, limiter, cfg, log).Init(), db
}

func noLimit() config.RateLimit {
	return config.RateLimit{Enabled: false}
}

func guestLimit(policy string) config.RateLimit {
	return config.RateLimit{Enabled: true, Guest: policy, Strategy: config.StrategyMovingWindow}
}

func decodeItem(t *testing.T, body []byte) models.ItemResponse {
	t.Helper()
	var item models.ItemResponse
	require.NoError(t, json.Unmarshal(body, &item))
	return item
}

func decodeItems(t *testing.T, body []byte) []models.ItemResponse {
	t.Helper()
	var items []models.ItemResponse
	require.NoError(t, json.Unmarshal(body, &items))
	return items
}

func TestE2E_CreateThenGet(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())

	created := serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"widget","details":"x"}`))
	require.Equal(t, http.StatusCreated, created.Code)
	assert.JSONEq(t, `{"name":"widget","details":"x"}`, created.Body.String())

	got := serve(h, http.MethodGet, "/api/v1/items/widget", nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, `{"name":"widget","details":"x"}`, got.Body.String())
}

func TestE2E_MissingItemHasNoSideEffects(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"keep"}`)).Code)

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/items/ghost", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/api/v1/items/ghost", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodPatch, "/api/v1/items/ghost", jsonBody(`{"details":"d"}`)).Code)

	list := serve(h, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, `[{"name":"keep","details":null}]`, list.Body.String())
}

func TestE2E_ListReturnsEveryCreatedItem(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())

	want := map[string]string{}
	for i := 0; i < 5; i++ {
		name, details := fmt.Sprintf("item-%d", i), fmt.Sprintf("details-%d", i)
		want[name] = details

		rec := serve(h, http.MethodPost, "/api/v1/items", jsonBody(fmt.Sprintf(`{"name":%q,"details":%q}`, name, details)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	list := serve(h, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, list.Code)

	items := decodeItems(t, list.Body.Bytes())
	require.Len(t, items, len(want))
	for _, item := range items {
		require.NotNil(t, item.Details)
		assert.Equal(t, want[item.Name], *item.Details)
	}
}

func TestE2E_PartialUpdate(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"widget","details":"x"}`)).Code)

	// details only
	rec := serve(h, http.MethodPatch, "/api/v1/items/widget", jsonBody(`{"details":"y"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"widget","details":"y"}`, rec.Body.String())

	// name only
	rec = serve(h, http.MethodPatch, "/api/v1/items/widget", jsonBody(`{"name":"gadget"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"gadget","details":"y"}`, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/items/widget", nil).Code)

	// explicit null is ignored
	rec = serve(h, http.MethodPatch, "/api/v1/items/gadget", jsonBody(`{"details":null}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"gadget","details":"y"}`, rec.Body.String())

	// empty string is stored as is
	rec = serve(h, http.MethodPatch, "/api/v1/items/gadget", jsonBody(`{"details":""}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", *decodeItem(t, rec.Body.Bytes()).Details)

	// blank name is rejected
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodPatch, "/api/v1/items/gadget", jsonBody(`{"name":" "}`)).Code)
}

func TestE2E_Conflicts(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"a"}`)).Code)
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"b"}`)).Code)

	assert.Equal(t, http.StatusConflict, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"a"}`)).Code)
	assert.Equal(t, http.StatusConflict, serve(h, http.MethodPatch, "/api/v1/items/b", jsonBody(`{"name":"a"}`)).Code)

	// the failed rename rolled back
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/items/b", nil).Code)
}

func TestE2E_DeleteThenGet(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/items", jsonBody(`{"name":"widget"}`)).Code)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/api/v1/items/widget", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/items/widget", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/api/v1/items/widget", nil).Code)
}

func TestE2E_RateLimitSeventhRequestIs429(t *testing.T) {
	h, _ := newSQLiteRouter(t, guestLimit("6/minute"))

	for i := 1; i <= 6; i++ {
		rec := serve(h, http.MethodGet, "/api/v1/items", nil)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := serve(h, http.MethodGet, "/api/v1/items", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded: 6 per 1 minute"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// other routes keep their own quota
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", nil).Code)
	// operational routes are never limited
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/version", nil).Code)
}

func TestE2E_RateLimitDisabled(t *testing.T) {
	h, _ := newSQLiteRouter(t, noLimit())

	for i := 0; i < 30; i++ {
		rec := serve(h, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestE2E_Health(t *testing.T) {
	h, db := newSQLiteRouter(t, noLimit())

	ok := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.JSONEq(t, `{"status":"ok"}`, ok.Body.String())

	require.NoError(t, db.Close())

	failed := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, failed.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(failed.Body.Bytes(), &body))
	assert.Equal(t, models.HealthStatusError, body.Status)
	assert.Contains(t, body.Details, "Database connection failed: ")
}
