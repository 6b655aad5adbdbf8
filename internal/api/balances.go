package api

import (
	"net/http"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
)

type BalanceHandler struct {
	balances *service.BalanceService
}

func NewBalanceHandler(balances *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

// GroupBalances handles GET /groups/{id}/balances
func (h *BalanceHandler) GroupBalances(w http.ResponseWriter, r *http.Request) {
	reports, err := h.balances.GroupBalances(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]balanceResponse, len(reports))
	for i, report := range reports {
		out[i] = toBalanceResponse(report)
	}
	writeJSON(w, http.StatusOK, out)
}

// UserBalances handles GET /users/{id}/balances
func (h *BalanceHandler) UserBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balances.UserBalances(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]userBalanceResponse, len(balances))
	for i, balance := range balances {
		out[i] = userBalanceResponse{
			GroupID:         balance.GroupID,
			balanceResponse: toBalanceResponse(balance.BalanceReport),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
