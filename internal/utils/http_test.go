package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/items-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	details := "red"
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "item", data: models.ItemResponse{Name: "apple", Details: &details}, status: http.StatusCreated, wantBody: `{"name":"apple","details":"red"}`},
		{name: "null details", data: models.ItemResponse{Name: "apple"}, status: http.StatusOK, wantBody: `{"name":"apple","details":null}`},
		{name: "empty list", data: []models.ItemResponse{}, status: http.StatusOK, wantBody: `[]`},
		{name: "error detail", data: models.ErrorResponse{Detail: "Item not found"}, status: http.StatusNotFound, wantBody: `{"detail":"Item not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"An unexpected error occurred"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.NewItemInput
		wantErr error
		anyErr  bool
	}{
		{name: "valid", body: `{"name":"apple","details":"red"}`, want: models.NewItemInput{Name: "apple", Details: strPtr("red")}},
		{name: "trailing whitespace", body: "{\"name\":\"apple\"}\n  ", want: models.NewItemInput{Name: "apple"}},
		{name: "trailing value", body: `{"name":"apple"}{"name":"pear"}`, wantErr: ErrTrailingData},
		{name: "malformed", body: `{"name":`, anyErr: true},
		{name: "wrong type", body: `{"name":42}`, anyErr: true},
		{name: "empty", body: ``, anyErr: true},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantErr: ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.NewItemInput
			err := DecodeJSON(strings.NewReader(tt.body), &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeJSON_NullFieldsStayNil(t *testing.T) {
	var got models.UpdateItemInput
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":null,"details":null}`), &got))

	assert.Nil(t, got.Name)
	assert.Nil(t, got.Details)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func strPtr(s string) *string { return &s }
