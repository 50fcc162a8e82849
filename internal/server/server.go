// Package server provides the HTTP server and handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/minsu-han/corpsite/internal/config"
	"github.com/minsu-han/corpsite/internal/content"
	"github.com/minsu-han/corpsite/internal/database"
)

// Server is the main HTTP server.
type Server struct {
	services *content.Services
	router   chi.Router
	log      zerolog.Logger
	httpSrv  *http.Server

	uploadsDir    string
	uploadsBase   string
	adminPassword string
}

// New creates a new server over the given store.
func New(cfg *config.Config, store database.Store, log zerolog.Logger) *Server {
	s := &Server{
		services:      content.NewServices(store),
		log:           log,
		uploadsDir:    cfg.Uploads.Dir,
		uploadsBase:   cfg.Uploads.BaseURL,
		adminPassword: cfg.Admin.Password,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(s.adminContext)

	// Serve uploaded files.
	r.Handle(s.uploadsBase+"/*", http.StripPrefix(s.uploadsBase+"/", http.FileServer(http.Dir(s.uploadsDir))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/status", s.handleAuthStatus)

		// Public reads.
		r.Get("/page-settings", s.handleGetPageSetting)
		r.Get("/portfolio", s.handleListPortfolio)
		r.Get("/portfolio/{id}", s.handleGetPortfolio)
		r.Get("/downloads", s.handleListDownloads)
		r.Get("/downloads/categories", s.handleListCategories)
		r.Get("/downloads/{id}", s.handleGetDownload)
		r.Get("/notices", s.handleListNotices)
		r.Get("/notices/{id}", s.handleGetNotice)
		r.Get("/main-cards", s.handleListCards)
		r.Get("/editor-settings", s.handleGetEditorSettings)

		// Admin writes.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/page-settings", s.handleSetPageSetting)
			r.Put("/page-settings", s.handleSetPageSetting)
			r.Post("/portfolio", s.handleCreatePortfolio)
			r.Put("/portfolio", s.handleUpdatePortfolioByBody)
			r.Delete("/portfolio", s.handleDeletePortfolioByBody)
			r.Put("/portfolio/{id}", s.handleUpdatePortfolio)
			r.Delete("/portfolio/{id}", s.handleDeletePortfolio)
			r.Post("/downloads", s.handleCreateDownload)
			r.Put("/downloads/{id}", s.handleUpdateDownload)
			r.Delete("/downloads/{id}", s.handleDeleteDownload)
			r.Post("/downloads/categories", s.handleAddCategory)
			r.Put("/downloads/categories", s.handleRenameCategory)
			r.Delete("/downloads/categories", s.handleDeleteCategory)
			r.Post("/notices", s.handleCreateNotice)
			r.Put("/notices/{id}", s.handleUpdateNotice)
			r.Delete("/notices/{id}", s.handleDeleteNotice)
			r.Put("/main-cards", s.handleReplaceCards)
			r.Post("/main-cards/reset", s.handleResetCards)
			r.Post("/editor-settings", s.handleSetEditorSettings)
			r.Post("/upload", s.handleUpload)
			r.Post("/editor-upload", s.handleEditorUpload)
			r.Get("/export", s.handleExport)
		})
	})

	s.router = r
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("server starting")
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
