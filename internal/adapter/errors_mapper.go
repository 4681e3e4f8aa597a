package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/items-api/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		if retry := resp.Header().Get("Retry-After"); retry != "" {
			return fmt.Errorf("%w: %s (retry after %ss)", ErrTooManyRequests, body, retry)
		}
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorText extracts the message from a {"detail": ...} or {"error": ...}
// body and falls back to the raw body or the status text.
func errorText(resp *resty.Response) string {
	raw := resp.Body()

	var detail models.ErrorResponse
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var limited models.RateLimitResponse
	if err := json.Unmarshal(raw, &limited); err == nil && limited.Error != "" {
		return limited.Error
	}

	if body := strings.TrimSpace(string(raw)); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
