package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// CreateExpense persists an expense together with all of its splits in one
// transaction. Either everything lands or nothing does; balance reads can
// never observe an expense without its splits.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, amount_cents, paid_by, split_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, expense.Amount.Cents,
		expense.PaidBy, string(expense.SplitType), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		if split.ID == "" {
			split.ID = uuid.New().String()
		}
		split.ExpenseID = expense.ID

		// Percentage is only meaningful for percentage splits; equal
		// splits store NULL.
		percentage := sql.NullFloat64{
			Float64: split.Percentage,
			Valid:   expense.SplitType == models.SplitTypePercentage,
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO expense_splits (id, expense_id, user_id, amount_cents, percentage)
			 VALUES (?, ?, ?, ?, ?)`,
			split.ID, split.ExpenseID, split.UserID, split.Amount.Cents, percentage,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListGroupExpenses returns a group's expenses with their splits, oldest
// first. The rows are read inside one transaction so the splits always
// match the expenses.
func (s *SQLiteStore) ListGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := groupExists(ctx, tx, groupID); err != nil {
		return nil, err
	}

	expenses, err := listGroupExpenses(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return expenses, nil
}

// GetGroupSnapshot reads a group's members, expenses and splits in a
// single transaction, giving balance calculations a consistent view.
func (s *SQLiteStore) GetGroupSnapshot(ctx context.Context, groupID string) (*storage.GroupSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := groupExists(ctx, tx, groupID); err != nil {
		return nil, err
	}

	members, err := listGroupMembers(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}

	expenses, err := listGroupExpenses(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &storage.GroupSnapshot{Members: members, Expenses: expenses}, nil
}

// listGroupExpenses reads the group's expenses oldest first and attaches
// their splits.
func listGroupExpenses(ctx context.Context, q queryer, groupID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, group_id, description, amount_cents, paid_by, split_type, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[string]int)
	for rows.Next() {
		var expense models.Expense
		var cents int64
		var splitType string
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description,
			&cents, &expense.PaidBy, &splitType, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = models.Money{Cents: cents}
		expense.SplitType = models.SplitType(splitType)

		index[expense.ID] = len(expenses)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if len(expenses) == 0 {
		return nil, nil
	}

	splitRows, err := q.QueryContext(ctx,
		`SELECT s.id, s.expense_id, s.user_id, s.amount_cents, s.percentage
		 FROM expense_splits s
		 JOIN expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ?
		 ORDER BY s.rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.ExpenseSplit
		var cents int64
		var percentage sql.NullFloat64
		if err := splitRows.Scan(&split.ID, &split.ExpenseID, &split.UserID,
			&cents, &percentage); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		split.Amount = models.Money{Cents: cents}
		if percentage.Valid {
			split.Percentage = percentage.Float64
		}

		i, ok := index[split.ExpenseID]
		if !ok {
			continue
		}
		expenses[i].Splits = append(expenses[i].Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return expenses, nil
}
