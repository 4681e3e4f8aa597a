// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// ErrInvalidJSON is returned when a request body cannot be decoded into the
// expected input type. Callers can match against it with [errors.Is].
var ErrInvalidJSON = errors.New("invalid JSON body")

func wrapInvalidJSON(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
