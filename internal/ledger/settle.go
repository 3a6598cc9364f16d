package ledger

import (
	"sort"

	"splitledger/internal/money"
)

// SimplifyDebts reduces a balance mapping to an ordered list of transfers
// that settles it, using greedy largest-first matching: the biggest debtor
// pays the biggest creditor the smaller of the two obligations, repeatedly,
// until one side runs out.
//
// Output is deterministic: members with equal balances are ordered by id, so
// calling twice on the same input yields the same transfer list.
//
// A creditor left over when all debtors are settled is not an error; it is
// the normal result of expenses that were never apportioned (the payer spent
// the money but no obligation is tracked). A debtor left over means splits
// exceeded the expenses that back them, which is a data-integrity violation
// reported as ErrUnbalanced and never silently corrected.
func SimplifyDebts(balances map[int64]money.Money) ([]Transfer, error) {
	type account struct {
		memberID int64
		balance  money.Money
	}

	var debtors, creditors []account
	for id, b := range balances {
		switch {
		case b < -settleTolerance:
			debtors = append(debtors, account{id, b})
		case b > settleTolerance:
			creditors = append(creditors, account{id, b})
		}
	}

	// Largest obligations first; id breaks ties so the order is stable.
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].memberID < debtors[j].memberID
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].memberID < creditors[j].memberID
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		owed := debtors[i].balance.Neg()
		due := creditors[j].balance

		amount := owed
		if due < amount {
			amount = due
		}
		if amount <= 0 {
			// Unreachable with exact money; guards against a
			// non-terminating loop if an invariant is ever broken.
			return nil, ErrUnbalanced
		}

		transfers = append(transfers, Transfer{
			FromMemberID: debtors[i].memberID,
			ToMemberID:   creditors[j].memberID,
			Amount:       amount,
		})

		debtors[i].balance = debtors[i].balance.Add(amount)
		creditors[j].balance = creditors[j].balance.Sub(amount)

		if debtors[i].balance >= -settleTolerance {
			i++
		}
		if creditors[j].balance <= settleTolerance {
			j++
		}
	}

	if i < len(debtors) {
		return nil, ErrUnbalanced
	}

	return transfers, nil
}
