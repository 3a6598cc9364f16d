package ledger

import (
	"sort"

	"splitledger/internal/money"
)

// RedistributeEven recomputes the shares of an expense after a participant
// drops out: the original total is divided evenly among the remaining
// members, with the rounding remainder assigned to the lowest member ids so
// the shares still sum to the total exactly.
//
// Returns nil when memberIDs is empty; an expense with no remaining
// participants keeps no splits and no obligation is tracked for it.
func RedistributeEven(total money.Money, memberIDs []int64) []Share {
	if len(memberIDs) == 0 {
		return nil
	}

	ids := make([]int64, len(memberIDs))
	copy(ids, memberIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	amounts := total.SplitEven(len(ids))
	shares := make([]Share, len(ids))
	for i, id := range ids {
		shares[i] = Share{MemberID: id, Amount: amounts[i]}
	}
	return shares
}
