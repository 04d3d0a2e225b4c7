package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodySize caps request bodies; every payload here is a handful of fields.
const maxBodySize = 1 << 20

func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIDParam
	}
	return id, nil
}

func clientIDFromQuery(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get("clientId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClientIDParam
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// reconcileID applies the URL id to a PUT body. A body id of zero means
// "not given"; any other value must match.
func reconcileID(urlID, bodyID int64) (int64, error) {
	if bodyID != 0 && bodyID != urlID {
		return 0, ErrIDMismatch
	}
	return urlID, nil
}
