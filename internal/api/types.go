package api

import "github.com/Anirudh-rb26/ExpenseTracker/internal/models"

// Request and response shapes for the REST surface. Amounts travel as
// two-decimal floats; models.Money handles the conversion both ways.

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

type createGroupRequest struct {
	Name    string   `json:"name"`
	UserIDs []string `json:"user_ids"`
}

type groupResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Users         []userResponse `json:"users"`
	TotalExpenses models.Money   `json:"total_expenses"`
	CreatedAt     int64          `json:"created_at"`
}

type splitRequest struct {
	UserID     string  `json:"user_id"`
	Percentage float64 `json:"percentage"`
}

type createExpenseRequest struct {
	Description string           `json:"description"`
	Amount      models.Money     `json:"amount"`
	PaidBy      string           `json:"paid_by"`
	SplitType   models.SplitType `json:"split_type"`
	Splits      []splitRequest   `json:"splits"`
}

type splitResponse struct {
	UserID     string       `json:"user_id"`
	Amount     models.Money `json:"amount"`
	Percentage float64      `json:"percentage,omitempty"`
}

type expenseResponse struct {
	ID          string           `json:"id"`
	GroupID     string           `json:"group_id"`
	Description string           `json:"description"`
	Amount      models.Money     `json:"amount"`
	PaidBy      string           `json:"paid_by"`
	SplitType   models.SplitType `json:"split_type"`
	CreatedAt   int64            `json:"created_at"`
	Splits      []splitResponse  `json:"splits"`
}

type balanceResponse struct {
	UserID     string                  `json:"user_id"`
	UserName   string                  `json:"user_name"`
	Owes       map[string]models.Money `json:"owes"`
	OwedBy     map[string]models.Money `json:"owed_by"`
	NetBalance models.Money            `json:"net_balance"`
}

// userBalanceResponse is a group balance row tagged with its group.
type userBalanceResponse struct {
	GroupID string `json:"group_id"`
	balanceResponse
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}
	return out
}

func toGroupResponse(details models.GroupDetails) groupResponse {
	return groupResponse{
		ID:            details.ID,
		Name:          details.Name,
		Users:         toUserResponses(details.Users),
		TotalExpenses: details.TotalExpenses,
		CreatedAt:     details.CreatedAt,
	}
}

func toExpenseResponse(expense models.Expense) expenseResponse {
	splits := make([]splitResponse, len(expense.Splits))
	for i, split := range expense.Splits {
		splits[i] = splitResponse{
			UserID:     split.UserID,
			Amount:     split.Amount,
			Percentage: split.Percentage,
		}
	}
	return expenseResponse{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		Description: expense.Description,
		Amount:      expense.Amount,
		PaidBy:      expense.PaidBy,
		SplitType:   expense.SplitType,
		CreatedAt:   expense.CreatedAt,
		Splits:      splits,
	}
}

func toBalanceResponse(report models.BalanceReport) balanceResponse {
	return balanceResponse{
		UserID:     report.UserID,
		UserName:   report.UserName,
		Owes:       report.Owes,
		OwedBy:     report.OwedBy,
		NetBalance: report.NetBalance,
	}
}
