// Package ledger implements the settlement engine for a group of members:
// folding expenses and their splits into per-member net balances, reducing
// those balances to a minimal list of pairwise transfers, and recomputing
// even shares when a participant drops out of an expense.
//
// The package is pure: it takes immutable snapshots and performs no I/O, so
// any number of callers may use it concurrently.
package ledger

import (
	"errors"

	"splitledger/internal/money"
)

// settleTolerance is the single tolerance used by every balance comparison
// in this package. Amounts are exact integer minor units, so any non-zero
// balance is real money and the tolerance is zero.
const settleTolerance money.Money = 0

// Common errors
var (
	// ErrUnbalanced means the input balances do not sum to zero. This is a
	// data-integrity violation in the caller's snapshot, not a retryable
	// condition.
	ErrUnbalanced = errors.New("balances do not sum to zero")

	// ErrUnknownExpense means a split row references an expense that is not
	// part of the snapshot.
	ErrUnknownExpense = errors.New("split references unknown expense")
)

// Expense is the slice of an expense row the engine needs: who paid and
// how much.
type Expense struct {
	ID      int64
	PayerID int64
	Amount  money.Money
}

// Split attributes a share of one expense to one member as a debt to the
// expense's payer.
type Split struct {
	ExpenseID int64
	MemberID  int64
	Amount    money.Money
}

// Transfer is one directed payment instruction: From pays To the amount.
type Transfer struct {
	FromMemberID int64
	ToMemberID   int64
	Amount       money.Money
}

// Share is one member's recomputed portion of an expense total.
type Share struct {
	MemberID int64
	Amount   money.Money
}
