package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/calculator"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// SplitInput names one member's requested percentage of an expense.
type SplitInput struct {
	UserID     string
	Percentage float64
}

// CreateExpenseParams carries everything needed to record an expense.
type CreateExpenseParams struct {
	Description string
	Amount      models.Money
	PaidBy      string
	SplitType   models.SplitType
	// Splits supplies the per-member percentages for percentage splits.
	// Equal splits ignore it: every group member gets a share.
	Splits []SplitInput
}

// ExpenseService records and lists group expenses.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create validates an expense request, computes the member shares and
// persists the expense with all of its splits in one transaction. Nothing
// is written when validation or the share calculation fails.
func (s *ExpenseService) Create(ctx context.Context, groupID string, params CreateExpenseParams) (*models.Expense, error) {
	slog.Info("AddExpense request received",
		"group_id", groupID,
		"amount", params.Amount,
		"split_type", params.SplitType,
	)

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	memberIDs := make([]string, len(members))
	payerIsMember := false
	for i, member := range members {
		memberIDs[i] = member.ID
		if member.ID == params.PaidBy {
			payerIsMember = true
		}
	}
	if !payerIsMember {
		return nil, fmt.Errorf("payer %s is not a member of group %s: %w", params.PaidBy, groupID, ErrInvalidInput)
	}

	percentages, err := percentagesFromSplits(params)
	if err != nil {
		return nil, err
	}

	shares, err := calculator.CalculateShares(params.Amount, params.SplitType, memberIDs, percentages)
	if err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	expense := &models.Expense{
		GroupID:     groupID,
		Description: params.Description,
		Amount:      params.Amount,
		PaidBy:      params.PaidBy,
		SplitType:   params.SplitType,
		Splits:      make([]models.ExpenseSplit, 0, len(shares)),
	}
	for _, share := range shares {
		expense.Splits = append(expense.Splits, models.ExpenseSplit{
			UserID:     share.MemberID,
			Amount:     share.Amount,
			Percentage: share.Percentage,
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", groupID,
		"splits_count", len(expense.Splits),
	)
	return expense, nil
}

// List retrieves a group's expenses, oldest first.
func (s *ExpenseService) List(ctx context.Context, groupID string) ([]models.Expense, error) {
	expenses, err := s.store.ListGroupExpenses(ctx, groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return expenses, nil
}

// percentagesFromSplits turns the request's split list into the map the
// calculator expects, rejecting repeated members.
func percentagesFromSplits(params CreateExpenseParams) (map[string]float64, error) {
	if params.SplitType != models.SplitTypePercentage {
		return nil, nil
	}

	percentages := make(map[string]float64, len(params.Splits))
	for _, split := range params.Splits {
		if _, dup := percentages[split.UserID]; dup {
			return nil, calculator.NewInvalidSplitError("duplicate percentage entry for %s", split.UserID)
		}
		percentages[split.UserID] = split.Percentage
	}
	return percentages, nil
}
