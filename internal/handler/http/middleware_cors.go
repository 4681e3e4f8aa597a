package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins with every method and header and
// with credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORS.AllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
