package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/athlytiq/athlytiq/internal/assistant"
	"github.com/athlytiq/athlytiq/internal/config"
	"github.com/athlytiq/athlytiq/internal/database"
	"github.com/athlytiq/athlytiq/internal/nutrition"
)

const sessionCookie = "athlytiq_session"

type Server struct {
	cfg       config.Config
	db        *database.DB
	assistant *assistant.Service
	nutrition *nutrition.Service
	httpSrv   *http.Server
}

func New(cfg config.Config, db *database.DB, chat *assistant.Service, tools *nutrition.Service) *Server {
	return &Server{
		cfg:       cfg,
		db:        db,
		assistant: chat,
		nutrition: tools,
	}
}

// Start sets up routes and starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	s.routes(mux)

	handler := recoveryMiddleware(loggingMiddleware(mux))

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	slog.Info("Starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) routes(mux *http.ServeMux) {
	// AI routes are public and stateless; conversation state is whatever
	// the client sends back
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/analyze-food", s.handleAnalyzeFood)
	mux.HandleFunc("POST /api/nutrition-tool", s.handleNutritionTool)
	mux.HandleFunc("POST /api/nutrition-tool/export", s.handleMealPlanExport)

	// Account routes
	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.Handle("POST /api/delete-account", s.requireAuth(http.HandlerFunc(s.handleDeleteAccount)))

	// Profile + community
	mux.Handle("GET /api/profile", s.requireAuth(http.HandlerFunc(s.handleProfileGet)))
	mux.Handle("PUT /api/profile", s.requireAuth(http.HandlerFunc(s.handleProfileUpdate)))
	mux.HandleFunc("GET /api/comments", s.handleCommentsList)
	mux.Handle("POST /api/comments", s.requireAuth(http.HandlerFunc(s.handleCommentCreate)))
	mux.Handle("POST /api/feedback", s.requireAuth(http.HandlerFunc(s.handleFeedbackCreate)))
}
