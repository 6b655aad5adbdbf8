package calculator

import "github.com/Anirudh-rb26/ExpenseTracker/internal/models"

// ExpenseForBalance is an expense with the minimal information needed for
// balance calculations.
type ExpenseForBalance struct {
	PayerID string
	Amount  models.Money
}

// ShareForBalance is an expense split with the minimal information needed
// for balance calculations.
type ShareForBalance struct {
	MemberID string
	Amount   models.Money
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	MemberID string
	Paid     models.Money // Total amount paid across all expenses
	Owed     models.Money // Total of this member's shares
	Net      models.Money // Paid - Owed; positive = owed money, negative = owes money
}

// Settlement is a directed transfer that helps clear a group's debts.
type Settlement struct {
	From   string // Member who pays
	To     string // Member who receives
	Amount models.Money
}

// GroupSettlement bundles the balances of one snapshot with the transfer
// plan that clears them.
type GroupSettlement struct {
	Balances    []MemberBalance
	Settlements []Settlement
}

// CalculateBalances aggregates a group snapshot into one net balance per
// member.
//
// Algorithm:
// - every member starts at zero, so members without activity still appear
// - for each expense: the payer's Paid grows by the full amount
// - for each share: the member's Owed grows by the share amount
// - net = paid - owed, emitted in memberIDs order
//
// Shares are rounded to the cent when expenses are recorded, so the nets
// of a healthy snapshot cancel out within a small allowance. A sum beyond
// the allowance cannot come from rounding and is reported as
// *DataIntegrityError.
func CalculateBalances(memberIDs []string, expenses []ExpenseForBalance, shares []ShareForBalance) ([]MemberBalance, error) {
	balances := make(map[string]*MemberBalance, len(memberIDs))
	ordered := make([]*MemberBalance, 0, len(memberIDs))

	// Members get entries up front; ids that only appear in expense rows
	// are appended after them in order of first appearance.
	ensure := func(id string) *MemberBalance {
		if bal, exists := balances[id]; exists {
			return bal
		}
		bal := &MemberBalance{MemberID: id}
		balances[id] = bal
		ordered = append(ordered, bal)
		return bal
	}
	for _, id := range memberIDs {
		ensure(id)
	}

	for _, expense := range expenses {
		bal := ensure(expense.PayerID)
		bal.Paid = bal.Paid.Add(expense.Amount)
	}
	for _, share := range shares {
		bal := ensure(share.MemberID)
		bal.Owed = bal.Owed.Add(share.Amount)
	}

	var sum models.Money
	result := make([]MemberBalance, 0, len(ordered))
	for _, bal := range ordered {
		bal.Net = bal.Paid.Sub(bal.Owed)
		sum = sum.Add(bal.Net)
		result = append(result, *bal)
	}

	allowance := roundingAllowance(len(ordered), len(expenses))
	if sum.Abs().Cents > allowance.Cents {
		return nil, &DataIntegrityError{Sum: sum, Allowance: allowance}
	}
	return result, nil
}

// roundingAllowance bounds how far a healthy snapshot's net balances can
// drift from zero: each expense can leave up to a cent per member
// unassigned after its shares are rounded.
func roundingAllowance(members, expenses int) models.Money {
	count := int64(expenses)
	if count == 0 {
		count = 1
	}
	return models.Money{Cents: ToleranceCents * int64(members) * count}
}

// CalculateSettlements produces a transfer plan that clears the given
// balances.
//
// Algorithm (greedy two-cursor matching):
// - partition members into debtors (net < 0) and creditors (net > 0),
//   both keeping the order balances were given in
// - repeatedly transfer min(outstanding debt, outstanding credit) between
//   the current debtor and the current creditor
// - advance a cursor once its remaining amount falls below one cent
//
// Every transfer exhausts the debtor or the creditor (or both), so a plan
// never needs more than debtors + creditors - 1 transfers, and the same
// balances always produce the same plan.
func CalculateSettlements(balances []MemberBalance) []Settlement {
	var debtors, creditors []MemberBalance
	for _, bal := range balances {
		switch {
		case bal.Net.IsNegative():
			debtors = append(debtors, bal)
		case bal.Net.IsPositive():
			creditors = append(creditors, bal)
		}
	}

	remaining := make(map[string]models.Money, len(debtors)+len(creditors))
	for _, d := range debtors {
		remaining[d.MemberID] = d.Net.Neg() // Make positive
	}
	for _, c := range creditors {
		remaining[c.MemberID] = c.Net
	}

	var settlements []Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].MemberID
		creditor := creditors[j].MemberID

		// Transfer the smaller of what the debtor still owes and what the
		// creditor is still owed.
		amount := remaining[debtor]
		if remaining[creditor].Cents < amount.Cents {
			amount = remaining[creditor]
		}

		if amount.Cents >= ToleranceCents {
			settlements = append(settlements, Settlement{
				From:   debtor,
				To:     creditor,
				Amount: amount,
			})
		}

		remaining[debtor] = remaining[debtor].Sub(amount)
		remaining[creditor] = remaining[creditor].Sub(amount)

		// Move on once a side is settled to the cent.
		if remaining[debtor].Cents < ToleranceCents {
			i++
		}
		if remaining[creditor].Cents < ToleranceCents {
			j++
		}
	}
	return settlements
}

// CalculateGroupSettlement computes balances and the transfer plan for one
// group snapshot in a single call.
func CalculateGroupSettlement(memberIDs []string, expenses []ExpenseForBalance, shares []ShareForBalance) (*GroupSettlement, error) {
	balances, err := CalculateBalances(memberIDs, expenses, shares)
	if err != nil {
		return nil, err
	}
	return &GroupSettlement{
		Balances:    balances,
		Settlements: CalculateSettlements(balances),
	}, nil
}
