package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minsu-han/corpsite/internal/model"
)

func (s *Server) handleListDownloads(w http.ResponseWriter, r *http.Request) {
	items, err := s.services.Downloads.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if items == nil {
		items = []model.DownloadItem{}
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetDownload(w http.ResponseWriter, r *http.Request) {
	item, err := s.services.Downloads.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreateDownload(w http.ResponseWriter, r *http.Request) {
	var item model.DownloadItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	id, err := s.services.Downloads.Create(&item)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleUpdateDownload(w http.ResponseWriter, r *http.Request) {
	var item model.DownloadItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Downloads.Update(chi.URLParam(r, "id"), &item); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteDownload(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Downloads.Delete(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// --- Category Handlers ---

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.services.Categories.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if cats == nil {
		cats = []model.Category{}
	}
	s.respondJSON(w, http.StatusOK, cats)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	cat, err := s.services.Categories.Add(req.Name)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, cat)
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldName string `json:"oldName"`
		NewName string `json:"newName"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Categories.Rename(req.OldName, req.NewName); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Categories.Delete(req.Name); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
