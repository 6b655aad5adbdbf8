package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/calculator"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
	"github.com/Anirudh-rb26/ExpenseTracker/internal/storage"
)

// setupGroupWithMembers creates three users and a group containing them.
func setupGroupWithMembers(t *testing.T, users *UserService, groups *GroupService) (*models.GroupDetails, []*models.User) {
	t.Helper()

	alice := mustCreateUser(t, users, "Alice", "alice@example.com")
	bob := mustCreateUser(t, users, "Bob", "bob@example.com")
	charlie := mustCreateUser(t, users, "Charlie", "charlie@example.com")

	group, err := groups.Create(context.Background(), "Roommates", []string{alice.ID, bob.ID, charlie.ID})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	return group, []*models.User{alice, bob, charlie}
}

func TestAddExpense_EqualSplit(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice := members[0]

	expense, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Dinner",
		Amount:      models.MoneyFromFloat(90),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypeEqual,
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if expense.ID == "" {
		t.Error("expected non-empty expense ID")
	}

	if expense.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}

	// Every member gets a share, payer included.
	if len(expense.Splits) != 3 {
		t.Fatalf("expected 3 splits, got %d", len(expense.Splits))
	}

	for _, split := range expense.Splits {
		if split.Amount.Cents != 3000 {
			t.Errorf("split for %s: expected 3000 cents, got %d", split.UserID, split.Amount.Cents)
		}
		if split.Percentage != 0 {
			t.Errorf("split for %s: expected no percentage on equal split, got %f", split.UserID, split.Percentage)
		}
	}
}

func TestAddExpense_PercentageSplit(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice, bob := members[0], members[1]

	expense, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Rent",
		Amount:      models.MoneyFromFloat(100),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypePercentage,
		Splits: []SplitInput{
			{UserID: alice.ID, Percentage: 25},
			{UserID: bob.ID, Percentage: 75},
		},
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	// Charlie has no percentage entry, so no share.
	if len(expense.Splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(expense.Splits))
	}

	if expense.Splits[0].UserID != alice.ID || expense.Splits[0].Amount.Cents != 2500 {
		t.Errorf("first split: expected alice/2500, got %s/%d", expense.Splits[0].UserID, expense.Splits[0].Amount.Cents)
	}
	if expense.Splits[0].Percentage != 25 {
		t.Errorf("first split percentage: expected 25, got %f", expense.Splits[0].Percentage)
	}

	if expense.Splits[1].UserID != bob.ID || expense.Splits[1].Amount.Cents != 7500 {
		t.Errorf("second split: expected bob/7500, got %s/%d", expense.Splits[1].UserID, expense.Splits[1].Amount.Cents)
	}
	if expense.Splits[1].Percentage != 75 {
		t.Errorf("second split percentage: expected 75, got %f", expense.Splits[1].Percentage)
	}
}

func TestAddExpense_GroupNotFound(t *testing.T) {
	users, _, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	alice := mustCreateUser(t, users, "Alice", "alice@example.com")

	_, err := expenses.Create(context.Background(), "nonexistent-id", CreateExpenseParams{
		Description: "Dinner",
		Amount:      models.MoneyFromFloat(90),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypeEqual,
	})
	if err == nil {
		t.Fatal("expected error for nonexistent group")
	}

	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddExpense_PayerNotMember(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, _ := setupGroupWithMembers(t, users, groups)
	outsider := mustCreateUser(t, users, "Zed", "zed@example.com")

	_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Dinner",
		Amount:      models.MoneyFromFloat(90),
		PaidBy:      outsider.ID,
		SplitType:   models.SplitTypeEqual,
	})
	if err == nil {
		t.Fatal("expected error for payer outside the group")
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddExpense_PercentagesDontSum(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice, bob := members[0], members[1]

	_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Rent",
		Amount:      models.MoneyFromFloat(100),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypePercentage,
		Splits: []SplitInput{
			{UserID: alice.ID, Percentage: 30},
			{UserID: bob.ID, Percentage: 30},
		},
	})
	if err == nil {
		t.Fatal("expected error for percentages summing to 60")
	}

	var splitErr *calculator.InvalidSplitError
	if !errors.As(err, &splitErr) {
		t.Errorf("expected InvalidSplitError, got %v", err)
	}
}

func TestAddExpense_DuplicatePercentageEntry(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice := members[0]

	_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Rent",
		Amount:      models.MoneyFromFloat(100),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypePercentage,
		Splits: []SplitInput{
			{UserID: alice.ID, Percentage: 50},
			{UserID: alice.ID, Percentage: 50},
		},
	})
	if err == nil {
		t.Fatal("expected error for repeated member in splits")
	}

	var splitErr *calculator.InvalidSplitError
	if !errors.As(err, &splitErr) {
		t.Errorf("expected InvalidSplitError, got %v", err)
	}
}

func TestAddExpense_PercentageForNonMember(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice := members[0]
	outsider := mustCreateUser(t, users, "Zed", "zed@example.com")

	_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Rent",
		Amount:      models.MoneyFromFloat(100),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypePercentage,
		Splits: []SplitInput{
			{UserID: alice.ID, Percentage: 25},
			{UserID: outsider.ID, Percentage: 75},
		},
	})
	if err == nil {
		t.Fatal("expected error for percentage aimed at a non-member")
	}

	var splitErr *calculator.InvalidSplitError
	if !errors.As(err, &splitErr) {
		t.Errorf("expected InvalidSplitError, got %v", err)
	}
}

func TestAddExpense_NothingPersistedOnFailure(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice := members[0]

	_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
		Description: "Rent",
		Amount:      models.MoneyFromFloat(100),
		PaidBy:      alice.ID,
		SplitType:   models.SplitTypePercentage,
		Splits:      []SplitInput{{UserID: alice.ID, Percentage: 10}},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	list, err := expenses.List(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}

	if len(list) != 0 {
		t.Errorf("expected no expenses after failed create, got %d", len(list))
	}
}

func TestListExpenses(t *testing.T) {
	users, groups, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	group, members := setupGroupWithMembers(t, users, groups)
	alice, bob := members[0], members[1]

	for _, e := range []struct {
		description string
		amount      float64
		paidBy      string
	}{
		{"Dinner", 90, alice.ID},
		{"Taxi", 30, bob.ID},
	} {
		_, err := expenses.Create(context.Background(), group.ID, CreateExpenseParams{
			Description: e.description,
			Amount:      models.MoneyFromFloat(e.amount),
			PaidBy:      e.paidBy,
			SplitType:   models.SplitTypeEqual,
		})
		if err != nil {
			t.Fatalf("AddExpense %s failed: %v", e.description, err)
		}
	}

	list, err := expenses.List(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(list))
	}

	// Oldest first, with splits attached.
	if list[0].Description != "Dinner" || list[1].Description != "Taxi" {
		t.Errorf("expected [Dinner Taxi], got [%s %s]", list[0].Description, list[1].Description)
	}
	for _, expense := range list {
		if len(expense.Splits) != 3 {
			t.Errorf("expense %s: expected 3 splits, got %d", expense.Description, len(expense.Splits))
		}
	}
}

func TestListExpenses_GroupNotFound(t *testing.T) {
	_, _, expenses, _, cleanup := setupServices(t)
	defer cleanup()

	_, err := expenses.List(context.Background(), "nonexistent-id")
	if err == nil {
		t.Fatal("expected error for nonexistent group")
	}

	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
