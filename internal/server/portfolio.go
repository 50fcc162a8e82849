package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minsu-han/corpsite/internal/model"
)

func (s *Server) handleListPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := s.services.Portfolio.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if items == nil {
		items = []model.PortfolioItem{}
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	item, err := s.services.Portfolio.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var item model.PortfolioItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	id, err := s.services.Portfolio.Create(&item)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleUpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	s.updatePortfolio(w, r, chi.URLParam(r, "id"))
}

// handleUpdatePortfolioByBody serves the collection-level PUT where the id
// travels in the payload.
func (s *Server) handleUpdatePortfolioByBody(w http.ResponseWriter, r *http.Request) {
	s.updatePortfolio(w, r, "")
}

func (s *Server) updatePortfolio(w http.ResponseWriter, r *http.Request, id string) {
	var item model.PortfolioItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	if id == "" {
		id = item.ID
	}
	if err := s.services.Portfolio.Update(id, &item); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	s.deletePortfolio(w, chi.URLParam(r, "id"))
}

// handleDeletePortfolioByBody serves the collection-level DELETE where the id
// travels in the payload.
func (s *Server) handleDeletePortfolioByBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	s.deletePortfolio(w, req.ID)
}

func (s *Server) deletePortfolio(w http.ResponseWriter, id string) {
	if err := s.services.Portfolio.Delete(id); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
