package server

import (
	"context"
	"crypto/subtle"
	"net/http"
)

type ctxKey int

const adminCtxKey ctxKey = iota

// adminCookie marks an authenticated admin session.
const adminCookie = "admin_auth"

// adminContext derives the admin flag from the request cookie exactly once
// and carries it in the context for downstream handlers.
func (s *Server) adminContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := false
		if c, err := r.Cookie(adminCookie); err == nil && c.Value == "1" {
			admin = true
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminCtxKey, admin)))
	})
}

func isAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminCtxKey).(bool)
	return admin
}

// requireAdmin guards the write routes.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r.Context()) {
			s.respondJSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := s.decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if s.adminPassword == "" {
		s.respondJSON(w, http.StatusForbidden, map[string]string{"error": "admin login is not configured"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		s.respondJSON(w, http.StatusForbidden, map[string]string{"error": "wrong password"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookie,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   adminCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin(r.Context())})
}
