package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commonsapp/commons/internal/api/handler"
	"github.com/commonsapp/commons/internal/api/middleware"
	"github.com/commonsapp/commons/internal/services/chat"
	"github.com/commonsapp/commons/internal/services/community"
	"github.com/commonsapp/commons/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *session.Manager
	Communities *community.Service
	Chat        *chat.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Sessions)
	communityHandler := handler.NewCommunityHandler(cfg.Communities)
	chatHandler := handler.NewChatHandler(cfg.Chat)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Sessions)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no active session required to sign up or log in)
	api.HandleFunc("/auth/signup", authHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Community routes (all require an active session)
	communities := api.PathPrefix("/communities").Subrouter()
	communities.Use(authMiddleware)
	communities.HandleFunc("", communityHandler.List).Methods(http.MethodGet)
	communities.HandleFunc("", communityHandler.Create).Methods(http.MethodPost)
	communities.HandleFunc("/{id}", communityHandler.Update).Methods(http.MethodPatch)
	communities.HandleFunc("/{id}", communityHandler.Delete).Methods(http.MethodDelete)

	// Chat feed routes
	messages := api.PathPrefix("/messages").Subrouter()
	messages.Use(authMiddleware)
	messages.HandleFunc("", chatHandler.List).Methods(http.MethodGet)
	messages.HandleFunc("", chatHandler.Post).Methods(http.MethodPost)

	// Region label vocabulary (no auth, the UI needs it pre-login)
	api.HandleFunc("/states", communityHandler.States).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
