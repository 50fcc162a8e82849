package server

import (
	"net/http"

	"github.com/minsu-han/corpsite/internal/model"
)

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.services.Cards.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if cards == nil {
		cards = []model.MainCard{}
	}
	s.respondJSON(w, http.StatusOK, cards)
}

// handleReplaceCards swaps the entire card set. The payload must be an array.
func (s *Server) handleReplaceCards(w http.ResponseWriter, r *http.Request) {
	var cards []model.MainCard
	if err := s.decodeJSON(r, &cards); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Cards.Replace(cards); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleResetCards(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Cards.Reset(); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
