// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/app"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a route but the method is not
// handled. This handler answers 404 with the usual {"detail": ...} body
// instead, so an unsupported method looks exactly like an unknown path.
//
// If the method IS registered for a route whose pattern equals the raw
// request path, the request is handed back to the router. Parameterised
// segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
