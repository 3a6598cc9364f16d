package member

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"splitledger/pkg/response"
)

// Handler handles HTTP requests for member operations
type Handler struct {
	service *Service
}

// NewHandler creates a new member handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for member endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}", h.ListByGroup)
	r.Post("/group/{groupId}", h.Add)
	r.Patch("/{id}", h.Rename)
	r.Delete("/group/{groupId}/{id}", h.Remove)

	return r
}

// ListByGroup handles GET /members/group/{groupId}
// @Summary      List group members
// @Tags         members
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Router       /members/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	members, err := h.service.ListByGroup(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to list members")
		return
	}

	resp := make([]*MemberResponse, len(members))
	for i, m := range members {
		resp[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Add handles POST /members/group/{groupId}
// @Summary      Add a member to a group
// @Description  Member names are unique per group, case-insensitively
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        request body AddMemberRequest true "Member to add"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /members/group/{groupId} [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.BadRequest(w, "Member name is required")
		return
	}

	m, err := h.service.Add(r.Context(), groupID, &req)
	if err != nil {
		if errors.Is(err, ErrMemberAlreadyExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add member")
		return
	}

	response.JSON(w, http.StatusCreated, m.ToResponse())
}

// Rename handles PATCH /members/{id}
// @Summary      Rename a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path int true "Member ID"
// @Param        request body UpdateMemberRequest true "New member name"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /members/{id} [patch]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.BadRequest(w, "Member name is required")
		return
	}

	m, err := h.service.Rename(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrMemberAlreadyExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to rename member")
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// Remove handles DELETE /members/group/{groupId}/{id}
// @Summary      Remove a member from a group
// @Description  Deletes expenses the member paid and re-splits expenses they shared among the remaining participants. Retries are safe: on a concurrent modification nothing is applied and 409 is returned.
// @Tags         members
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        id path int true "Member ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /members/group/{groupId}/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	if err := h.service.Remove(r.Context(), groupID, id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrConflict) {
			response.Conflict(w, "Splits changed concurrently; retry the removal")
			return
		}
		response.InternalError(w, "Failed to remove member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member removed"})
}
