package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/items-api/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the item name: required on create, non-blank when
	// present on update.
	FieldName = "name"

	// FieldID targets the optional item id of an update body.
	FieldID = "id"
)

// MaxNameLength is the longest item name the schema stores.
const MaxNameLength = 255

// ItemValidator validates item inputs.
type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewItemInput:
		return v.validateNewItem(ctx, value, fields...)
	case *models.NewItemInput:
		return v.validateNewItem(ctx, *value, fields...)

	case models.UpdateItemInput:
		return v.validateUpdateItem(ctx, value, fields...)
	case *models.UpdateItemInput:
		return v.validateUpdateItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateNewItem(ctx context.Context, input models.NewItemInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateUpdateItem(ctx context.Context, input models.UpdateItemInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if input.ID != nil && *input.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if input.Name == nil {
				continue
			}
			if err := validateName(*input.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
