package ledger

import "splitledger/internal/money"

// ComputeBalances folds a group's expenses and splits into a net balance per
// member: each expense credits its payer by the full amount, and each split
// debits its member by the share. Positive means the member is owed money,
// negative means they owe.
//
// Members with no activity are absent from the result; callers that want
// every group member present add explicit zeros themselves.
//
// The sum of all returned balances is exactly zero whenever every expense's
// splits sum to its amount and unapportioned expenses are excluded by the
// caller's snapshot, which is the store's invariant to maintain.
func ComputeBalances(expenses []Expense, splits []Split) (map[int64]money.Money, error) {
	known := make(map[int64]struct{}, len(expenses))
	for _, e := range expenses {
		known[e.ID] = struct{}{}
	}
	for _, s := range splits {
		if _, ok := known[s.ExpenseID]; !ok {
			return nil, ErrUnknownExpense
		}
	}

	balances := make(map[int64]money.Money)
	for _, e := range expenses {
		balances[e.PayerID] = balances[e.PayerID].Add(e.Amount)
	}
	for _, s := range splits {
		balances[s.MemberID] = balances[s.MemberID].Sub(s.Amount)
	}

	return balances, nil
}
