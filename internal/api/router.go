// Package api exposes the expense tracker over JSON REST.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/middleware"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/service"
)

// NewRouter builds the route table. Every API route is instrumented with
// request metrics; health and metrics endpoints are left bare.
func NewRouter(users *service.UserService, groups *service.GroupService, expenses *service.ExpenseService, balances *service.BalanceService) *http.ServeMux {
	mux := http.NewServeMux()

	userHandler := NewUserHandler(users)
	groupHandler := NewGroupHandler(groups)
	expenseHandler := NewExpenseHandler(expenses)
	balanceHandler := NewBalanceHandler(balances)

	handle := func(pattern, name string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(name, h))
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	handle("POST /users", "create_user", userHandler.Create)
	handle("GET /users", "list_users", userHandler.List)
	handle("GET /users/{id}/balances", "user_balances", balanceHandler.UserBalances)

	handle("POST /groups", "create_group", groupHandler.Create)
	handle("GET /groups", "list_groups", groupHandler.List)
	handle("GET /groups/{id}", "get_group", groupHandler.Get)

	handle("POST /groups/{id}/expenses", "add_expense", expenseHandler.Create)
	handle("GET /groups/{id}/expenses", "list_expenses", expenseHandler.List)
	handle("GET /groups/{id}/balances", "group_balances", balanceHandler.GroupBalances)

	return mux
}
