package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "items-api-client"

// HTTPClient embeds *resty.Client so callers build requests with the full
// resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. Every
// request carries the JSON Accept header and is cut off after timeout; a
// zero timeout disables the limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
