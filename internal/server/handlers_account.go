package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/athlytiq/athlytiq/internal/auth"
	"github.com/athlytiq/athlytiq/internal/models"
)

const sessionDuration = 7 * 24 * time.Hour

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))

	if err := auth.ValidateCredentials(body.Email, body.Password); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		slog.Error("Password hashing failed", "error", err)
		jsonError(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	user := models.User{Email: body.Email, PasswordHash: hash}
	if err := s.db.CreateUser(&user); err != nil {
		jsonError(w, "An account with this email already exists", http.StatusConflict)
		return
	}

	if err := s.db.UpsertProfile(&models.Profile{UserID: user.ID, Email: user.Email}); err != nil {
		slog.Warn("Failed to seed profile", "user_id", user.ID, "error", err)
	}

	if err := s.startSession(w, r, user.ID); err != nil {
		jsonError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("User signed up", "user_id", user.ID)
	jsonStatus(w, http.StatusCreated, map[string]any{"message": "Account created", "user_id": user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))

	user, err := s.db.GetUserByEmail(body.Email)
	if err != nil || auth.CheckPassword(body.Password, user.PasswordHash) != nil {
		jsonError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := s.startSession(w, r, user.ID); err != nil {
		jsonError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("User logged in", "user_id", user.ID)
	jsonResponse(w, map[string]any{"message": "Logged in", "user_id": user.ID})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := s.db.DeleteSession(cookie.Value); err != nil {
			slog.Warn("Failed to delete session", "error", err)
		}
	}
	s.clearSessionCookie(w, r)
	jsonResponse(w, map[string]string{"message": "Logged out"})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.db.DeleteUser(sess.UserID); err != nil {
		slog.Error("Account deletion failed", "user_id", sess.UserID, "error", err)
		jsonError(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}
	s.clearSessionCookie(w, r)
	slog.Info("Account deleted", "user_id", sess.UserID)
	jsonResponse(w, map[string]string{"message": "Account deleted successfully"})
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, userID int64) error {
	token, err := auth.GenerateToken()
	if err != nil {
		return err
	}
	sess := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionDuration),
	}
	if err := s.db.CreateSession(&sess); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Server) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
