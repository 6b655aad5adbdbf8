package calculator

import (
	"fmt"

	"github.com/Anirudh-rb26/ExpenseTracker/internal/models"
)

// ToleranceCents is the rounding tolerance policy: amounts within one cent
// are considered settled everywhere balances are compared.
const ToleranceCents int64 = 1

// InvalidSplitError reports a split request that fails validation, such as
// a non-positive amount or percentages that do not sum to 100. It maps to
// a client error at the API boundary.
type InvalidSplitError struct {
	Reason string
}

// NewInvalidSplitError builds an InvalidSplitError with a formatted reason.
func NewInvalidSplitError(format string, args ...any) *InvalidSplitError {
	return &InvalidSplitError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidSplitError) Error() string {
	return "invalid split: " + e.Reason
}

// DataIntegrityError reports a snapshot whose net balances do not cancel
// out within the rounding allowance. It means the stored expense or share
// rows are corrupt (e.g. a torn write), not that the request was bad, and
// must never be surfaced as a validation failure.
type DataIntegrityError struct {
	// Sum is the total of all net balances, which should be near zero.
	Sum models.Money

	// Allowance is the largest magnitude rounding alone can explain.
	Allowance models.Money
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: net balances sum to %s, beyond the %s rounding allowance", e.Sum, e.Allowance)
}
