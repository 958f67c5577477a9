package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athlytiq/athlytiq/internal/models"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	profile, err := s.db.GetProfile(sess.UserID)
	if err != nil {
		jsonError(w, "Profile not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, profile)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var body struct {
		FullName     string `json:"full_name"`
		Email        string `json:"email"`
		Bio          string `json:"bio"`
		FitnessGoals string `json:"fitness_goals"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile := models.Profile{
		UserID:       sess.UserID,
		FullName:     body.FullName,
		Email:        body.Email,
		Bio:          body.Bio,
		FitnessGoals: body.FitnessGoals,
	}
	if err := s.db.UpsertProfile(&profile); err != nil {
		slog.Error("Profile update failed", "user_id", sess.UserID, "error", err)
		jsonError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, profile)
}
