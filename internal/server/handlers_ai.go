package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/athlytiq/athlytiq/internal/assistant"
	"github.com/athlytiq/athlytiq/internal/export"
	"github.com/athlytiq/athlytiq/internal/gemini"
	"github.com/athlytiq/athlytiq/internal/nutrition"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		History []assistant.Turn `json:"history"`
		Message string           `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := s.assistant.Chat(r.Context(), body.History, body.Message)
	if err != nil {
		s.aiError(w, err, "AI service request failed.")
		return
	}

	jsonResponse(w, map[string]string{"response": reply})
}

func (s *Server) handleAnalyzeFood(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ImageData string           `json:"image_data"`
		MimeType  string           `json:"mime_type"`
		Prompt    string           `json:"prompt"`
		History   []assistant.Turn `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if body.Prompt == "" {
		jsonError(w, "Missing prompt", http.StatusBadRequest)
		return
	}

	var image *assistant.Attachment
	if body.ImageData != "" && body.MimeType != "" {
		if !strings.HasPrefix(body.MimeType, "image/") {
			jsonError(w, "Please upload a valid image file (JPEG, PNG, GIF, WEBP).", http.StatusBadRequest)
			return
		}
		image = &assistant.Attachment{Data: body.ImageData, MimeType: body.MimeType}
	}

	analysis, err := s.assistant.AnalyzeFood(r.Context(), assistant.AnalyzeRequest{
		Prompt:  body.Prompt,
		History: body.History,
		Image:   image,
	})
	if err != nil {
		var fe *gemini.FilteredError
		if errors.As(err, &fe) {
			slog.Error("Food analysis blocked", "reason", fe.Reason)
			jsonError(w, "AI response was blocked or empty. Please try a different prompt or image.", http.StatusInternalServerError)
			return
		}
		s.aiError(w, err, "AI analysis request failed.")
		return
	}

	jsonResponse(w, map[string]string{"analysis": analysis})
}

func (s *Server) handleNutritionTool(w http.ResponseWriter, r *http.Request) {
	var wire nutrition.WireRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, err := wire.Resolve()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.nutrition.Run(r.Context(), req)
	if err != nil {
		slog.Error("Nutrition tool failed", "mode", wire.Mode, "error", err)
		s.aiError(w, err, "AI tool request failed.")
		return
	}

	jsonResponse(w, map[string]any{"result": result})
}

func (s *Server) handleMealPlanExport(w http.ResponseWriter, r *http.Request) {
	var plan nutrition.MealPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := export.MealPlanPDF(&plan)
	if err != nil {
		if errors.Is(err, export.ErrEmptyPlan) {
			jsonError(w, "No meal plan data to download.", http.StatusBadRequest)
			return
		}
		slog.Error("Meal plan export failed", "error", err)
		jsonError(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	title := plan.Title
	if title == "" {
		title = "meal_plan"
	}
	filename := fmt.Sprintf("%s_%ddays.pdf", strings.ReplaceAll(title, " ", "_"), plan.PlanDurationDays)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// aiError maps a pipeline failure onto the route's error envelope. Every
// class surfaces once; nothing is retried.
func (s *Server) aiError(w http.ResponseWriter, err error, failMsg string) {
	if errors.Is(err, gemini.ErrNoAPIKey) {
		slog.Error("Gemini API key not configured")
		jsonError(w, "API key not configured", http.StatusInternalServerError)
		return
	}

	var filtered *gemini.FilteredError
	if errors.As(err, &filtered) {
		slog.Error("Generation blocked or empty", "reason", filtered.Reason)
		jsonError(w, filtered.Error(), http.StatusInternalServerError)
		return
	}

	var format *nutrition.FormatError
	if errors.As(err, &format) {
		// Raw model output stays in the logs; callers get the generic
		// message.
		slog.Error("Unparsable model response", "snippet", format.Snippet())
		jsonError(w, format.Error(), http.StatusInternalServerError)
		return
	}

	slog.Error("AI request failed", "error", err)
	jsonErrorDetails(w, failMsg, err.Error(), http.StatusInternalServerError)
}
