package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, _ = utils.WriteJSON(w, buildInfo.ToResponse(), http.StatusOK)
}
