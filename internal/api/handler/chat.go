package handler

import (
	"encoding/json"
	"net/http"

	"github.com/commonsapp/commons/internal/api/middleware"
	"github.com/commonsapp/commons/internal/api/request"
	"github.com/commonsapp/commons/internal/api/response"
	"github.com/commonsapp/commons/internal/services/chat"
)

// ChatHandler handles the chat feed endpoints
type ChatHandler struct {
	chat *chat.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *chat.Service) *ChatHandler {
	return &ChatHandler{
		chat: chat,
	}
}

// List handles GET /api/v1/messages
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.MessagesFromModel(h.chat.Messages()))
}

// Post handles POST /api/v1/messages
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	message, err := h.chat.Post(user.Username, req.Content)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MessageFromModel(*message))
}
