package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minsu-han/corpsite/internal/content"
	"github.com/minsu-han/corpsite/internal/model"
)

func (s *Server) handleListNotices(w http.ResponseWriter, r *http.Request) {
	items, err := s.services.Notices.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if items == nil {
		items = []model.NoticeItem{}
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetNotice(w http.ResponseWriter, r *http.Request) {
	id, err := noticeID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	item, err := s.services.Notices.Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreateNotice(w http.ResponseWriter, r *http.Request) {
	var item model.NoticeItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	id, err := s.services.Notices.Create(&item)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleUpdateNotice(w http.ResponseWriter, r *http.Request) {
	id, err := noticeID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	var item model.NoticeItem
	if err := s.decodeJSON(r, &item); err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Notices.Update(id, &item); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteNotice(w http.ResponseWriter, r *http.Request) {
	id, err := noticeID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := s.services.Notices.Delete(id); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func noticeID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, content.ErrInvalidInput
	}
	return id, nil
}
