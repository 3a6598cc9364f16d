package settlement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"splitledger/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}/balances", h.Balances)
	r.Get("/group/{groupId}/transfers", h.Transfers)

	return r
}

// Balances handles GET /settlements/group/{groupId}/balances
// @Summary      Group balances
// @Description  Each member's net position: positive is owed money, negative owes
// @Tags         settlements
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /settlements/group/{groupId}/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	balances, err := h.service.Balances(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrLedgerCorrupt) {
			response.InternalError(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// Transfers handles GET /settlements/group/{groupId}/transfers
// @Summary      Who pays whom
// @Description  The minimal list of direct payments that settles the group
// @Tags         settlements
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]TransferResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /settlements/group/{groupId}/transfers [get]
func (h *Handler) Transfers(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	transfers, err := h.service.Transfers(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrLedgerCorrupt) {
			response.InternalError(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute transfers")
		return
	}

	response.JSON(w, http.StatusOK, transfers)
}
