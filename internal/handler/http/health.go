package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/items-api/internal/app"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	env := app.EnvDevelopment
	if h.services.AppInfoService.IsProduction(r.Context()) {
		env = app.EnvProduction
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf(app.MsgRunningOn, env),
	}, http.StatusOK)
}

// health always answers 200; a failed database round trip is reported in
// the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.WithSession(r.Context(), func(ctx context.Context, s store.Session) error {
		return h.services.ItemService.CheckDatabase(ctx, s)
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg(app.MsgDatabaseConnectionFailed)
		_, _ = utils.WriteJSON(w, models.HealthResponse{
			Status:  models.HealthStatusError,
			Details: app.MsgDatabaseConnectionFailed + ": " + err.Error(),
		}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}
