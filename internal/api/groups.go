package api

import (
	"net/http"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
)

type GroupHandler struct {
	groups *service.GroupService
}

func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

// Create handles POST /groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	group, err := h.groups.Create(r.Context(), req.Name, req.UserIDs)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(*group))
}

// Get handles GET /groups/{id}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(*group))
}

// List handles GET /groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]groupResponse, len(groups))
	for i, group := range groups {
		out[i] = toGroupResponse(group)
	}
	writeJSON(w, http.StatusOK, out)
}
