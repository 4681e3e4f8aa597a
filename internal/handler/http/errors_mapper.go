package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/items-api/internal/app"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/service"
	"github.com/MKhiriev/items-api/internal/store"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/internal/validators"
	"github.com/MKhiriev/items-api/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrEmptyName:        http.StatusBadRequest,
	validators.ErrNameTooLong:      http.StatusBadRequest,
	validators.ErrInvalidID:        http.StatusBadRequest,

	store.ErrItemNotFound:      http.StatusNotFound,
	store.ErrItemAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto a status and writes {"detail": ...}. 5xx causes
// are always logged; their text reaches the client only outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var detail string
	switch status {
	case http.StatusNotFound:
		detail = app.MsgItemNotFound
	case http.StatusConflict:
		detail = app.MsgItemAlreadyExists
	case http.StatusBadRequest:
		if errors.Is(err, ErrInvalidJSON) {
			detail = app.MsgInvalidJSON
		} else {
			detail = err.Error()
		}
	default:
		log.Err(err).Str("func", funcName).Msg("unexpected error")
		detail = app.MsgUnexpectedError
		if !h.services.AppInfoService.IsProduction(r.Context()) {
			detail += ": " + err.Error()
		}
	}

	if status < http.StatusInternalServerError {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}
