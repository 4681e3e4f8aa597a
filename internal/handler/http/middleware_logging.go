package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/items-api/internal/logger"
)

// withLogging logs "→ METHOD path" before and "← METHOD path" after the
// request. A panic further down is logged and re-raised so the recoverer
// still answers 500.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		log.Info().
			Str("method", method).
			Str("path", path).
			Msgf("→ %s %s", method, path)

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("method", method).
					Str("path", path).
					Any("panic", rec).
					Dur("duration", time.Since(start)).
					Msgf("← %s %s | panic", method, path)
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msgf("← %s %s | Status: %d", method, path, status)
	})
}
