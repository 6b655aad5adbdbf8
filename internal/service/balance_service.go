package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/calculator"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// maxBalanceWorkers caps concurrent per-group balance computations when
// assembling a user's cross-group view.
const maxBalanceWorkers = 4

// BalanceService derives balances and settlement suggestions from stored
// expenses. It persists nothing: every call recomputes from the current
// expense history.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// GroupBalances computes the per-member balance reports for a group. Each
// report carries the member's net position plus the settlement transfers
// that would clear it, keyed by counterparty.
func (s *BalanceService) GroupBalances(ctx context.Context, groupID string) ([]models.BalanceReport, error) {
	slog.Info("GetGroupBalances request received", "group_id", groupID)

	snapshot, err := s.store.GetGroupSnapshot(ctx, groupID)
	if err != nil {
		slog.Error("GetGroupBalances failed", "group_id", groupID, "error", err)
		return nil, err
	}

	reports, err := balanceReports(snapshot)
	if err != nil {
		slog.Error("GetGroupBalances failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Info("Group balances computed",
		"group_id", groupID,
		"members", len(reports),
		"expenses", len(snapshot.Expenses),
	)
	return reports, nil
}

// UserBalances computes the calling user's balance report in every group
// they belong to.
func (s *BalanceService) UserBalances(ctx context.Context, userID string) ([]models.UserGroupBalance, error) {
	slog.Info("GetUserBalances request received", "user_id", userID)

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		slog.Error("GetUserBalances failed", "user_id", userID, "error", err)
		return nil, err
	}

	groupIDs, err := s.store.ListGroupIDsByUser(ctx, userID)
	if err != nil {
		slog.Error("GetUserBalances failed", "user_id", userID, "error", err)
		return nil, err
	}

	// Each group's balances are independent, so compute them in parallel
	// with a bounded number of workers. Results keep membership order.
	results := make([]*models.UserGroupBalance, len(groupIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBalanceWorkers)
	for i, groupID := range groupIDs {
		g.Go(func() error {
			reports, err := s.GroupBalances(gctx, groupID)
			if err != nil {
				return err
			}
			for _, report := range reports {
				if report.UserID == userID {
					results[i] = &models.UserGroupBalance{
						GroupID:       groupID,
						BalanceReport: report,
					}
					break
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("GetUserBalances failed", "user_id", userID, "error", err)
		return nil, err
	}

	balances := make([]models.UserGroupBalance, 0, len(groupIDs))
	for _, result := range results {
		if result != nil {
			balances = append(balances, *result)
		}
	}

	slog.Info("User balances computed", "user_id", userID, "groups", len(balances))
	return balances, nil
}

// balanceReports runs the settlement calculation over a group snapshot and
// shapes the result into per-member reports, in group membership order.
func balanceReports(snapshot *storage.GroupSnapshot) ([]models.BalanceReport, error) {
	memberIDs := make([]string, len(snapshot.Members))
	names := make(map[string]string, len(snapshot.Members))
	for i, member := range snapshot.Members {
		memberIDs[i] = member.ID
		names[member.ID] = member.Name
	}

	expenses := make([]calculator.ExpenseForBalance, 0, len(snapshot.Expenses))
	var shares []calculator.ShareForBalance
	for _, expense := range snapshot.Expenses {
		expenses = append(expenses, calculator.ExpenseForBalance{
			PayerID: expense.PaidBy,
			Amount:  expense.Amount,
		})
		for _, split := range expense.Splits {
			shares = append(shares, calculator.ShareForBalance{
				MemberID: split.UserID,
				Amount:   split.Amount,
			})
		}
	}

	result, err := calculator.CalculateGroupSettlement(memberIDs, expenses, shares)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.BalanceReport, len(result.Balances))
	reports := make([]models.BalanceReport, len(result.Balances))
	for i, balance := range result.Balances {
		name, ok := names[balance.MemberID]
		if !ok {
			name = balance.MemberID
		}
		reports[i] = models.BalanceReport{
			UserID:     balance.MemberID,
			UserName:   name,
			Owes:       make(map[string]models.Money),
			OwedBy:     make(map[string]models.Money),
			NetBalance: balance.Net,
		}
		byID[balance.MemberID] = &reports[i]
	}

	for _, transfer := range result.Settlements {
		byID[transfer.From].Owes[transfer.To] = transfer.Amount
		byID[transfer.To].OwedBy[transfer.From] = transfer.Amount
	}

	return reports, nil
}
