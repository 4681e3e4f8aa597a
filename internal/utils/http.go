// Package utils provides small helpers shared by the server and the client:
// JSON request and response handling, the resty-based HTTP client and item
// id generation.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/items-api/models"
)

const (
	// maxBodyBytes caps the size of a decoded request body.
	maxBodyBytes = 1 << 20

	encodeFailureDetail = "An unexpected error occurred"
)

var (
	ErrBodyTooLarge = errors.New("request body too large")
	ErrTrailingData = errors.New("unexpected data after JSON value")
)

// WriteJSON serializes data and writes it with the given status code and an
// application/json content type. If data cannot be marshaled a 500 with a
// {"detail": ...} body is written instead and the marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		fallback, _ := json.Marshal(models.ErrorResponse{Detail: encodeFailureDetail})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallback)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes exactly one JSON value from body into v. Bodies larger
// than 1 MiB and anything but whitespace after the value are rejected.
func DecodeJSON(body io.Reader, v any) error {
	limited := &io.LimitedReader{R: body, N: maxBodyBytes + 1}

	dec := json.NewDecoder(limited)
	if err := dec.Decode(v); err != nil {
		if limited.N <= 0 {
			return ErrBodyTooLarge
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if limited.N <= 0 {
			return ErrBodyTooLarge
		}
		return ErrTrailingData
	}

	return nil
}
