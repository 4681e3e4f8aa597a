// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewItemValidator(t *testing.T) {
	v := NewItemValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NewItemInput{Name: "widget"}))
	assert.NoError(t, v.Validate(ctx, &models.NewItemInput{Name: "widget"}))
	assert.NoError(t, v.Validate(ctx, models.UpdateItemInput{}))
	assert.NoError(t, v.Validate(ctx, &models.UpdateItemInput{}))
	assert.ErrorIs(t, v.Validate(ctx, "widget"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Item{}), ErrUnsupportedType)
}

func TestValidate_NewItemInput(t *testing.T) {
	tests := []struct {
		name    string
		input   models.NewItemInput
		fields  []string
		wantErr error
	}{
		{name: "valid", input: models.NewItemInput{Name: "widget", Details: strPtr("x")}},
		{name: "valid without details", input: models.NewItemInput{Name: "widget"}},
		{name: "empty name", input: models.NewItemInput{}, wantErr: ErrEmptyName},
		{name: "blank name", input: models.NewItemInput{Name: " \t "}, wantErr: ErrEmptyName},
		{name: "max length", input: models.NewItemInput{Name: strings.Repeat("é", MaxNameLength)}},
		{name: "too long", input: models.NewItemInput{Name: strings.Repeat("a", MaxNameLength+1)}, wantErr: ErrNameTooLong},
		{name: "unknown field", input: models.NewItemInput{Name: "widget"}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewItemValidator().Validate(context.Background(), tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UpdateItemInput(t *testing.T) {
	id := uuid.New()
	nilID := uuid.Nil

	tests := []struct {
		name    string
		input   models.UpdateItemInput
		fields  []string
		wantErr error
	}{
		{name: "empty update", input: models.UpdateItemInput{}},
		{name: "only details", input: models.UpdateItemInput{Details: strPtr("")}},
		{name: "with id", input: models.UpdateItemInput{ID: &id, Name: strPtr("widget")}},
		{name: "nil uuid", input: models.UpdateItemInput{ID: &nilID}, wantErr: ErrInvalidID},
		{name: "blank name", input: models.UpdateItemInput{Name: strPtr("  ")}, wantErr: ErrEmptyName},
		{name: "blank name not checked when scoped to id", input: models.UpdateItemInput{Name: strPtr("")}, fields: []string{FieldID}},
		{name: "unknown field", input: models.UpdateItemInput{}, fields: []string{"details"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewItemValidator().Validate(context.Background(), tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
