package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName   = errors.New("name is required")
	ErrNameTooLong = errors.New("name must be at most 255 characters")
	ErrInvalidID   = errors.New("invalid item id")
)
