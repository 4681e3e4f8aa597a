package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const itemsPrefix = "/api/v1/items"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}

	// operational routes, not rate limited
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Get("/version", h.getServerVersion)

	// guest routes
	router.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.Handler)
		}

		r.Get("/", h.root)
		r.Get("/healthz", h.health)

		// full paths keep the matched pattern, and so the quota, per route
		r.Get(itemsPrefix, h.listItems)
		r.Post(itemsPrefix, h.createItem)
		r.Get(itemsPrefix+"/{name}", h.getItem)
		r.Patch(itemsPrefix+"/{name}", h.updateItem)
		r.Delete(itemsPrefix+"/{name}", h.deleteItem)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
