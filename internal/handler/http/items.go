// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const nameParam = "name"

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	var items []models.Item
	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		var err error
		items, err = h.services.ItemService.ListItems(ctx, s)
		return err
	})
	if err != nil {
		h.writeError(w, r, "*Handler.listItems", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ToResponses(items), http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)

	var item models.Item
	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		var err error
		item, err = h.services.ItemService.GetItem(ctx, s, name)
		return err
	})
	if err != nil {
		h.writeError(w, r, "*Handler.getItem", err)
		return
	}

	_, _ = utils.WriteJSON(w, item.ToResponse(), http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var input models.NewItemInput
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		h.writeError(w, r, "*Handler.createItem", wrapInvalidJSON(err))
		return
	}

	var item models.Item
	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		var err error
		item, err = h.services.ItemService.CreateItem(ctx, s, input)
		return err
	})
	if err != nil {
		h.writeError(w, r, "*Handler.createItem", err)
		return
	}

	_, _ = utils.WriteJSON(w, item.ToResponse(), http.StatusCreated)
}

// updateItem applies a partial update. The target is the id from the body
// when present, otherwise the item named in the path; both the lookup and
// the update share one session.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)

	var input models.UpdateItemInput
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		h.writeError(w, r, "*Handler.updateItem", wrapInvalidJSON(err))
		return
	}

	var item models.Item
	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		var id uuid.UUID
		if input.ID != nil {
			id = *input.ID
		} else {
			current, err := h.services.ItemService.GetItem(ctx, s, name)
			if err != nil {
				return err
			}
			id = current.ID
		}

		var err error
		item, err = h.services.ItemService.UpdateItem(ctx, s, id, input)
		return err
	})
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	_, _ = utils.WriteJSON(w, item.ToResponse(), http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)

	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		return h.services.ItemService.DeleteItem(ctx, s, name)
	})
	if err != nil {
		h.writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
