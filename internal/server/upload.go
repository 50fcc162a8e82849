package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/minsu-han/corpsite/internal/content"
)

const maxUploadBytes = 32 << 20

// handleUpload accepts a multipart file and answers with the stored file URL.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	fileURL, err := s.saveUpload(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"fileUrl": fileURL})
}

// handleEditorUpload is the rich-text editor's image upload variant; same
// storage, different response key.
func (s *Server) handleEditorUpload(w http.ResponseWriter, r *http.Request) {
	fileURL, err := s.saveUpload(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"url": fileURL})
}

func (s *Server) saveUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", content.ErrInvalidInput
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("no file provided: %w", content.ErrInvalidInput)
	}
	defer file.Close()

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	// The stored name is freshly generated; only the extension survives from
	// the client-supplied filename.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.uploadsDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.uploadsBase + "/" + name, nil
}
