package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/liftlog/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto distinct user-visible failures:
// a broken store schema means "fix the sheet", a gateway failure means
// "try again".
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var malformed *models.MalformedSourceError
	if errors.As(err, &malformed) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
			"kind":  "malformed_source",
		})
		return
	}

	var unavailable *models.StoreUnavailableError
	if errors.As(err, &unavailable) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": err.Error(),
			"kind":  "store_unavailable",
		})
		return
	}

	s.log.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
