package models

// SplitType determines how an expense amount is divided among group members.
type SplitType string

const (
	// SplitTypeEqual divides the amount evenly among all group members,
	// the payer included.
	SplitTypeEqual SplitType = "equal"

	// SplitTypePercentage divides the amount according to per-member
	// percentages that must sum to 100.
	SplitTypePercentage SplitType = "percentage"
)

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	return t == SplitTypeEqual || t == SplitTypePercentage
}

// Expense represents money paid by one group member on behalf of the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a human-readable label (e.g., "Dinner", "Taxi").
	Description string

	// Amount is the full amount the payer spent.
	Amount Money

	// PaidBy is the user ID of the member who paid.
	PaidBy string

	// SplitType determines how Amount was divided into Splits.
	SplitType SplitType

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// Splits are the per-member shares of Amount. An expense is always
	// written together with all of its splits, never partially.
	Splits []ExpenseSplit
}

// ExpenseSplit is one member's share of an expense.
type ExpenseSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID is the expense this share belongs to.
	ExpenseID string

	// UserID is the member who owes this share.
	UserID string

	// Amount is the member's share of the expense amount.
	Amount Money

	// Percentage is the requested share for percentage splits.
	// It is zero (stored as NULL) for equal splits.
	Percentage float64
}
