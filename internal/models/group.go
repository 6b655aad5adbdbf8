package models

// Group represents a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupDetails is a group together with its resolved members and the total
// of all expenses recorded so far. Members are ordered by when they joined,
// which is also the order balances and settlements are reported in.
type GroupDetails struct {
	Group

	// Users are the group's members in join order.
	Users []User

	// TotalExpenses is the sum of all expense amounts in the group.
	TotalExpenses Money
}
