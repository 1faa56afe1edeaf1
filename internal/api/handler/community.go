package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commonsapp/commons/internal/api/middleware"
	"github.com/commonsapp/commons/internal/api/request"
	"github.com/commonsapp/commons/internal/api/response"
	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/services/community"
)

// CommunityHandler handles community endpoints
type CommunityHandler struct {
	communities *community.Service
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communities *community.Service) *CommunityHandler {
	return &CommunityHandler{
		communities: communities,
	}
}

// List handles GET /api/v1/communities
// With ?mine=true only the caller's communities are returned; with
// ?creator=<username> those of an exact-match creator.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	var communities []model.Community

	switch {
	case r.URL.Query().Get("mine") == "true":
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			WriteError(w, NewUnauthorizedError())
			return
		}
		communities = h.communities.ForCreator(user.Username)
	case r.URL.Query().Get("creator") != "":
		communities = h.communities.ForCreator(r.URL.Query().Get("creator"))
	default:
		communities = h.communities.All()
	}

	response.JSON(w, http.StatusOK, response.CommunitiesFromModel(communities))
}

// Create handles POST /api/v1/communities
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.CreateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if !model.IsUSState(req.State) {
		WriteError(w, NewInvalidRequestError("state must be a US state name"))
		return
	}

	created, err := h.communities.Add(r.Context(), req.Name, req.State, user.Username, req.ImageData)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CommunityFromModel(*created))
}

// Update handles PATCH /api/v1/communities/{id}
//
// The registry treats a non-creator update as a silent no-op, so ownership is
// re-checked here to give the client a real error.
func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	id := model.CommunityID(mux.Vars(r)["id"])
	target, ok := h.communities.Get(id)
	if !ok {
		WriteError(w, model.ErrCommunityNotFound)
		return
	}
	if target.CreatorUsername != user.Username {
		WriteError(w, model.ErrNotCreator)
		return
	}

	var req request.UpdateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if !model.IsUSState(req.State) {
		WriteError(w, NewInvalidRequestError("state must be a US state name"))
		return
	}

	if err := h.communities.Update(r.Context(), user.Username, id, req.Name, req.State, req.ImageData); err != nil {
		WriteError(w, err)
		return
	}

	updated, _ := h.communities.Get(id)
	response.JSON(w, http.StatusOK, response.CommunityFromModel(updated))
}

// Delete handles DELETE /api/v1/communities/{id}
func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, NewUnauthorizedError())
		return
	}

	id := model.CommunityID(mux.Vars(r)["id"])
	target, ok := h.communities.Get(id)
	if !ok {
		WriteError(w, model.ErrCommunityNotFound)
		return
	}
	if target.CreatorUsername != user.Username {
		WriteError(w, model.ErrNotCreator)
		return
	}

	if err := h.communities.Delete(r.Context(), user.Username, id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// States handles GET /api/v1/states
func (h *CommunityHandler) States(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.StatesResponse{States: model.USStates})
}
