package calculator

import (
	"math"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
)

// Share is one member's computed portion of an expense amount.
type Share struct {
	MemberID   string
	Amount     models.Money
	Percentage float64 // Requested percentage for percentage splits, zero otherwise
}

// percentageSumTolerance is how far the supplied percentages may drift from
// 100 and still be accepted (covers client-side float formatting).
const percentageSumTolerance = 0.01

// CalculateShares computes each member's share of an expense amount.
//
// Equal splits divide the amount evenly among every member, the payer
// included: each share is the amount divided by the member count, rounded
// half to even to the cent. Sub-cent remainders are not redistributed, so
// shares may drift from the amount by up to half a cent per member.
//
// Percentage splits produce shares only for members listed in percentages,
// which must sum to 100 within tolerance. Each share is the corresponding
// percentage of the amount, rounded half to even to the cent.
//
// Shares come back in memberIDs order, so the same inputs always produce
// the same output. Validation failures return *InvalidSplitError.
func CalculateShares(amount models.Money, splitType models.SplitType, memberIDs []string, percentages map[string]float64) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, NewInvalidSplitError("amount must be positive, got %s", amount)
	}
	if len(memberIDs) == 0 {
		return nil, NewInvalidSplitError("group has no members")
	}

	switch splitType {
	case models.SplitTypeEqual:
		return equalShares(amount, memberIDs), nil
	case models.SplitTypePercentage:
		return percentageShares(amount, memberIDs, percentages)
	default:
		return nil, NewInvalidSplitError("unknown split type %q", splitType)
	}
}

func equalShares(amount models.Money, memberIDs []string) []Share {
	per := amount.Divide(int64(len(memberIDs)))

	shares := make([]Share, 0, len(memberIDs))
	for _, id := range memberIDs {
		shares = append(shares, Share{MemberID: id, Amount: per})
	}
	return shares
}

func percentageShares(amount models.Money, memberIDs []string, percentages map[string]float64) ([]Share, error) {
	if len(percentages) == 0 {
		return nil, NewInvalidSplitError("percentage split requires a percentage per member")
	}

	member := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		member[id] = true
	}

	sum := 0.0
	for id, pct := range percentages {
		if !member[id] {
			return nil, NewInvalidSplitError("percentage given for %s, who is not in the group", id)
		}
		if pct < 0 {
			return nil, NewInvalidSplitError("percentage for %s must not be negative", id)
		}
		sum += pct
	}
	if math.Abs(sum-100) > percentageSumTolerance {
		return nil, NewInvalidSplitError("percentages must sum to 100, got %.2f", sum)
	}

	// Members without an entry receive no share.
	shares := make([]Share, 0, len(percentages))
	for _, id := range memberIDs {
		pct, ok := percentages[id]
		if !ok {
			continue
		}
		shares = append(shares, Share{
			MemberID:   id,
			Amount:     amount.Percent(pct),
			Percentage: pct,
		})
	}
	return shares, nil
}
