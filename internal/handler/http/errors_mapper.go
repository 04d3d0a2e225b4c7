package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/client-admin/internal/app"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/service"
	"github.com/MKhiriev/client-admin/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidIDParam:              http.StatusBadRequest,
	ErrInvalidClientIDParam:        http.StatusBadRequest,
	ErrIDMismatch:                  http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrClientNotFound:          http.StatusNotFound,
	store.ErrAccountNotFound:         http.StatusNotFound,
	store.ErrOwnerNotFound:           http.StatusUnprocessableEntity,
	store.ErrNationalIDAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures are reported with a generic message so driver details never
// reach the caller.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", op).Int("status", status).Msg("request failed")
		http.Error(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Str("func", op).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
