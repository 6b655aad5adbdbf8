package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
)

var expensesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "expensetracker_expenses_created_total",
	Help: "Expenses recorded, by split type.",
}, []string{"split_type"})

type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create handles POST /groups/{id}/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	params := service.CreateExpenseParams{
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		SplitType:   req.SplitType,
		Splits:      make([]service.SplitInput, len(req.Splits)),
	}
	for i, split := range req.Splits {
		params.Splits[i] = service.SplitInput{
			UserID:     split.UserID,
			Percentage: split.Percentage,
		}
	}

	expense, err := h.expenses.Create(r.Context(), r.PathValue("id"), params)
	if err != nil {
		respondError(w, err)
		return
	}

	expensesCreated.WithLabelValues(string(expense.SplitType)).Inc()
	writeJSON(w, http.StatusCreated, toExpenseResponse(*expense))
}

// List handles GET /groups/{id}/expenses
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.List(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, expense := range expenses {
		out[i] = toExpenseResponse(expense)
	}
	writeJSON(w, http.StatusOK, out)
}
