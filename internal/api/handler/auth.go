package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/commonsapp/commons/internal/api/middleware"
	"github.com/commonsapp/commons/internal/api/request"
	"github.com/commonsapp/commons/internal/api/response"
	"github.com/commonsapp/commons/internal/services/session"
)

// birthDateLayout is the wire format for birth dates
const birthDateLayout = "2006-01-02"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// SignUp handles POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}
	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		WriteError(w, NewInvalidRequestError("birth_date must be YYYY-MM-DD"))
		return
	}

	if err := h.sessions.SignUp(r.Context(), req.Username, req.Password, birthDate); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.sessionResponse())
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("username and password are required"))
		return
	}

	if err := h.sessions.SignIn(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.sessionResponse())
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	u := response.UserFromModel(user)
	response.JSON(w, http.StatusOK, response.SessionResponse{
		Authenticated: true,
		User:          &u,
	})
}

func (h *AuthHandler) sessionResponse() response.SessionResponse {
	user, ok := h.sessions.Current()
	if !ok {
		return response.SessionResponse{}
	}
	u := response.UserFromModel(user)
	return response.SessionResponse{
		Authenticated: true,
		User:          &u,
	}
}
