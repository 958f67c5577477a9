package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/athlytiq/athlytiq/internal/models"
)

const defaultCommentLimit = 50

func (s *Server) handleCommentsList(w http.ResponseWriter, r *http.Request) {
	limit := defaultCommentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			jsonError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	comments, err := s.db.ListComments(limit)
	if err != nil {
		slog.Error("Failed to list comments", "error", err)
		jsonError(w, "Failed to load comments", http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	jsonResponse(w, map[string]any{"comments": comments})
}

func (s *Server) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	content := strings.TrimSpace(body.Content)
	if content == "" {
		jsonError(w, "Comment content is required", http.StatusBadRequest)
		return
	}

	name, err := s.db.DisplayName(sess.UserID)
	if err != nil {
		slog.Warn("Failed to resolve display name", "user_id", sess.UserID, "error", err)
		name = fmt.Sprintf("User %d", sess.UserID)
	}

	comment := models.Comment{
		ID:         uuid.NewString(),
		UserID:     sess.UserID,
		Content:    content,
		UserName:   name,
		UserAvatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", sess.UserID),
	}
	if err := s.db.CreateComment(&comment); err != nil {
		slog.Error("Failed to create comment", "user_id", sess.UserID, "error", err)
		jsonError(w, "Failed to post comment", http.StatusInternalServerError)
		return
	}

	jsonStatus(w, http.StatusCreated, comment)
}

func (s *Server) handleFeedbackCreate(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		jsonError(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	fb := models.Feedback{
		ID:      uuid.NewString(),
		UserID:  sess.UserID,
		Rating:  body.Rating,
		Comment: strings.TrimSpace(body.Comment),
	}
	if err := s.db.CreateFeedback(&fb); err != nil {
		slog.Error("Failed to store feedback", "user_id", sess.UserID, "error", err)
		jsonError(w, "Failed to submit feedback", http.StatusInternalServerError)
		return
	}

	jsonStatus(w, http.StatusCreated, map[string]string{"message": "Feedback received"})
}
