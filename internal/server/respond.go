package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/minsu-han/corpsite/internal/content"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

// respondError maps the service taxonomy onto HTTP statuses. Store failures
// get a generic message; the detail stays in the log.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		s.respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, content.ErrInvalidInput):
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, content.ErrConflict):
		s.respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.log.Error().Err(err).Msg("store failure")
		s.respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (s *Server) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return content.ErrInvalidInput
	}
	return nil
}
