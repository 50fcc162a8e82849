package server

import (
	"net/http"

	"github.com/minsu-han/corpsite/internal/model"
)

// exportDocument is the full content dump served to admins for backup.
type exportDocument struct {
	PageSettings []model.PageSection   `json:"pageSettings"`
	Portfolio    []model.PortfolioItem `json:"portfolio"`
	Downloads    []model.DownloadItem  `json:"downloads"`
	Categories   []model.Category      `json:"categories"`
	Notices      []model.NoticeItem    `json:"notices"`
	MainCards    []model.MainCard      `json:"mainCards"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var doc exportDocument
	var err error
	if doc.PageSettings, err = s.services.Pages.List(); err != nil {
		s.respondError(w, err)
		return
	}
	if doc.Portfolio, err = s.services.Portfolio.List(); err != nil {
		s.respondError(w, err)
		return
	}
	if doc.Downloads, err = s.services.Downloads.List(); err != nil {
		s.respondError(w, err)
		return
	}
	if doc.Categories, err = s.services.Categories.List(); err != nil {
		s.respondError(w, err)
		return
	}
	if doc.Notices, err = s.services.Notices.List(); err != nil {
		s.respondError(w, err)
		return
	}
	if doc.MainCards, err = s.services.Cards.List(); err != nil {
		s.respondError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=corpsite-export.json")
	s.respondJSON(w, http.StatusOK, doc)
}
