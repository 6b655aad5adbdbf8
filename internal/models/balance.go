package models

// BalanceReport is one member's position within a group: who they should
// pay, who should pay them, and the resulting net balance. Reports are
// derived from the group's expenses on every read.
type BalanceReport struct {
	// UserID is the member this report is for.
	UserID string

	// UserName is the member's display name, resolved for convenience.
	UserName string

	// Owes maps creditor user IDs to the amount this member should pay
	// them. Empty (never nil) when the member owes nothing.
	Owes map[string]Money

	// OwedBy maps debtor user IDs to the amount they should pay this
	// member. Empty (never nil) when nobody owes the member.
	OwedBy map[string]Money

	// NetBalance is total paid minus total owed. Positive means the group
	// owes this member money; negative means the member owes the group.
	NetBalance Money
}

// UserGroupBalance is a member's BalanceReport tagged with the group it was
// computed for, used by the per-user view across all of their groups.
type UserGroupBalance struct {
	// GroupID is the group the report belongs to.
	GroupID string

	BalanceReport
}
