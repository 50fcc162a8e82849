package server

import (
	"net/http"

	"github.com/minsu-han/corpsite/internal/content"
	"github.com/minsu-han/corpsite/internal/model"
)

func (s *Server) handleGetPageSetting(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		s.respondError(w, content.ErrInvalidInput)
		return
	}
	section, err := s.services.Pages.Get(page)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, section)
}

func (s *Server) handleSetPageSetting(w http.ResponseWriter, r *http.Request) {
	var section model.PageSection
	if err := s.decodeJSON(r, &section); err != nil {
		s.respondError(w, err)
		return
	}
	saved, err := s.services.Pages.Set(&section)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetEditorSettings(w http.ResponseWriter, r *http.Request) {
	apiKey, err := s.services.Settings.EditorAPIKey()
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"apiKey": apiKey})
}

func (s *Server) handleSetEditorSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Settings.SetEditorAPIKey(req.APIKey); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
