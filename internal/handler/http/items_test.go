package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/mock"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/validators"
	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	items    *mock.MockItemService
	appInfo  *mock.MockAppInfoService
	sessions *mock.MockSessionProvider
	session  *mock.MockSession
}

// newMockedRouter builds the full router over mocked services. Every
// WithSession call runs fn on the same mock session.
func newMockedRouter(t *testing.T, production bool) (http.Handler, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		items:    mock.NewMockItemService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		sessions: mock.NewMockSessionProvider(ctrl),
		session:  mock.NewMockSession(ctrl),
	}

	m.sessions.EXPECT().
		WithSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.Session) error) error {
			return fn(ctx, m.session)
		}).
		AnyTimes()
	m.appInfo.EXPECT().IsProduction(gomock.Any()).Return(production).AnyTimes()
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")).
		AnyTimes()

	services := &service.Services{ItemService: m.items, AppInfoService: m.appInfo}
	cfg := config.StructuredConfig{CORS: config.CORS{Origins: "http://localhost:3000"}}

	h := NewHandler(services, m.sessions, nil, cfg, logger.Nop())
	return h.Init(), m
}

func serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return bytes.NewBufferString(s)
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// list / get
// ─────────────────────────────────────────────

func TestListItems(t *testing.T) {
	h, m := newMockedRouter(t, false)
	m.items.EXPECT().ListItems(gomock.Any(), m.session).Return([]models.Item{
		{ID: uuid.New(), Name: "a", Details: strPtr("x")},
		{ID: uuid.New(), Name: "b"},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/items", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"name":"a","details":"x"},{"name":"b","details":null}]`, rec.Body.String())
}

func TestListItems_EmptyIsArray(t *testing.T) {
	h, m := newMockedRouter(t, false)
	m.items.EXPECT().ListItems(gomock.Any(), m.session).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/v1/items/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetItem(t *testing.T) {
	tests := []struct {
		name       string
		item       models.Item
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			item:       models.Item{ID: uuid.New(), Name: "widget", Details: strPtr("x")},
			wantStatus: http.StatusOK,
			wantBody:   `{"name":"widget","details":"x"}`,
		},
		{
			name:       "not found",
			err:        store.ErrItemNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Item not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedRouter(t, false)
			m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").Return(tt.item, tt.err)

			rec := serve(h, http.MethodGet, "/api/v1/items/widget", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *handlerMocks)
		wantStatus int
		wantDetail string
		wantBody   string
	}{
		{
			name: "created",
			body: `{"name":"widget","details":"x"}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().
					CreateItem(gomock.Any(), m.session, models.NewItemInput{Name: "widget", Details: strPtr("x")}).
					Return(models.Item{ID: uuid.New(), Name: "widget", Details: strPtr("x")}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"name":"widget","details":"x"}`,
		},
		{
			name:       "invalid json",
			body:       `{"name":`,
			mockSetup:  func(m *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid JSON was passed",
		},
		{
			name: "validation error",
			body: `{"name":"  "}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().CreateItem(gomock.Any(), m.session, gomock.Any()).
					Return(models.Item{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName))
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided: name is required",
		},
		{
			name: "duplicate name",
			body: `{"name":"widget"}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().CreateItem(gomock.Any(), m.session, gomock.Any()).
					Return(models.Item{}, store.ErrItemAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantDetail: "Item with this name already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedRouter(t, false)
			tt.mockSetup(m)

			rec := serve(h, http.MethodPost, "/api/v1/items", jsonBody(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateItem_ResolvesPathName(t *testing.T) {
	h, m := newMockedRouter(t, false)
	id := uuid.New()

	gomock.InOrder(
		m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").
			Return(models.Item{ID: id, Name: "widget"}, nil),
		m.items.EXPECT().
			UpdateItem(gomock.Any(), m.session, id, models.UpdateItemInput{Details: strPtr("new")}).
			Return(models.Item{ID: id, Name: "widget", Details: strPtr("new")}, nil),
	)

	rec := serve(h, http.MethodPatch, "/api/v1/items/widget", jsonBody(`{"details":"new"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"widget","details":"new"}`, rec.Body.String())
}

func TestUpdateItem_BodyIDWins(t *testing.T) {
	h, m := newMockedRouter(t, false)
	id := uuid.New()

	m.items.EXPECT().
		UpdateItem(gomock.Any(), m.session, id, models.UpdateItemInput{ID: &id, Name: strPtr("renamed")}).
		Return(models.Item{ID: id, Name: "renamed"}, nil)

	body := fmt.Sprintf(`{"id":%q,"name":"renamed"}`, id)
	rec := serve(h, http.MethodPatch, "/api/v1/items/whatever", jsonBody(body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"renamed","details":null}`, rec.Body.String())
}

func TestUpdateItem_NullIsIgnored(t *testing.T) {
	h, m := newMockedRouter(t, false)
	id := uuid.New()

	m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").Return(models.Item{ID: id, Name: "widget"}, nil)
	m.items.EXPECT().
		UpdateItem(gomock.Any(), m.session, id, models.UpdateItemInput{Name: strPtr("renamed")}).
		Return(models.Item{ID: id, Name: "renamed", Details: strPtr("kept")}, nil)

	rec := serve(h, http.MethodPatch, "/api/v1/items/widget", jsonBody(`{"name":"renamed","details":null}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateItem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *handlerMocks)
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       `[`,
			mockSetup:  func(m *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "path name not found",
			body: `{"details":"x"}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").Return(models.Item{}, store.ErrItemNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "rename collision",
			body: `{"name":"taken"}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").Return(models.Item{ID: uuid.New()}, nil)
				m.items.EXPECT().UpdateItem(gomock.Any(), m.session, gomock.Any(), gomock.Any()).
					Return(models.Item{}, store.ErrItemAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "blank name",
			body: `{"name":""}`,
			mockSetup: func(m *handlerMocks) {
				m.items.EXPECT().GetItem(gomock.Any(), m.session, "widget").Return(models.Item{ID: uuid.New()}, nil)
				m.items.EXPECT().UpdateItem(gomock.Any(), m.session, gomock.Any(), gomock.Any()).
					Return(models.Item{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedRouter(t, false)
			tt.mockSetup(m)

			rec := serve(h, http.MethodPatch, "/api/v1/items/widget", jsonBody(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, decodeDetail(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDeleteItem(t *testing.T) {
	h, m := newMockedRouter(t, false)
	gomock.InOrder(
		m.items.EXPECT().DeleteItem(gomock.Any(), m.session, "widget").Return(nil),
		m.items.EXPECT().DeleteItem(gomock.Any(), m.session, "widget").Return(store.ErrItemNotFound),
	)

	first := serve(h, http.MethodDelete, "/api/v1/items/widget", nil)
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Empty(t, first.Body.String())

	second := serve(h, http.MethodDelete, "/api/v1/items/widget", nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, "Item not found", decodeDetail(t, second))
}

// ─────────────────────────────────────────────
// unexpected errors
// ─────────────────────────────────────────────

func TestUnexpectedError_DetailDependsOnEnvironment(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		wantDetail string
	}{
		{"development exposes cause", false, "An unexpected error occurred: disk on fire"},
		{"production hides cause", true, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedRouter(t, tt.production)
			m.items.EXPECT().ListItems(gomock.Any(), m.session).Return(nil, errors.New("disk on fire"))

			rec := serve(h, http.MethodGet, "/api/v1/items", nil)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestPanicInServiceBecomes500(t *testing.T) {
	h, m := newMockedRouter(t, false)
	m.items.EXPECT().ListItems(gomock.Any(), m.session).DoAndReturn(
		func(context.Context, store.Session) ([]models.Item, error) {
			panic("boom")
		})

	rec := serve(h, http.MethodGet, "/api/v1/items", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrItemNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrItemNotFound), http.StatusNotFound},
		{store.ErrItemAlreadyExists, http.StatusConflict},
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{validators.ErrNameTooLong, http.StatusBadRequest},
		{wrapInvalidJSON(errors.New("eof")), http.StatusBadRequest},
		{store.ErrBeginningTransaction, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

// ─────────────────────────────────────────────
// root / health / version / routing
// ─────────────────────────────────────────────

func TestRoot(t *testing.T) {
	for production, want := range map[bool]string{
		false: "Items API is running on Development Environment",
		true:  "Items API is running on Production Environment",
	} {
		h, _ := newMockedRouter(t, production)

		rec := serve(h, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, want, body.Message)
	}
}

func TestHealth(t *testing.T) {
	h, m := newMockedRouter(t, false)
	gomock.InOrder(
		m.items.EXPECT().CheckDatabase(gomock.Any(), m.session).Return(nil),
		m.items.EXPECT().CheckDatabase(gomock.Any(), m.session).Return(errors.New("connection refused")),
	)

	ok := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.JSONEq(t, `{"status":"ok"}`, ok.Body.String())

	failed := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, failed.Code)
	assert.JSONEq(t, `{"status":"error","details":"Database connection failed: connection refused"}`, failed.Body.String())
}

func TestHealth_SessionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	sessions := mock.NewMockSessionProvider(ctrl)
	sessions.EXPECT().WithSession(gomock.Any(), gomock.Any()).Return(store.ErrBeginningTransaction)

	services := &service.Services{ItemService: mock.NewMockItemService(ctrl), AppInfoService: appInfo}
	h := NewHandler(services, sessions, nil, config.StructuredConfig{}, logger.Nop()).Init()

	rec := serve(h, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.HealthStatusError, body.Status)
	assert.True(t, strings.HasPrefix(body.Details, "Database connection failed: "))
}

func TestVersion(t *testing.T) {
	h, _ := newMockedRouter(t, false)

	rec := serve(h, http.MethodGet, "/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.0.0","date":"2026-01-01","commit":"abc123"}`, rec.Body.String())
}

func TestRouting_UnknownPathAndMethod(t *testing.T) {
	h, _ := newMockedRouter(t, false)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPut, "/api/v1/items/widget"},
		{http.MethodDelete, "/api/v1/items"},
		{http.MethodPost, "/healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(h, tt.method, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not Found", decodeDetail(t, rec))
		})
	}
}
