package models

// ItemResponse is the API representation of an [Item].
type ItemResponse struct {
	Name    string  `json:"name"`
	Details *string `json:"details"`
}

// ErrorResponse is written for every non-2xx answer produced by the handlers.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail"`
}

// RateLimitResponse is written when a client exceeds its request quota.
type RateLimitResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the liveness banner returned by GET /.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /healthz. Status is "ok" or "error";
// Details is only set on error.
type HealthResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// Health statuses reported by GET /healthz.
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)

// BuildInfoResponse is returned by GET /version.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
