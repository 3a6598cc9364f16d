package ledger

import (
	"errors"
	"reflect"
	"testing"

	"splitledger/internal/money"
)

// applyTransfers replays a transfer list against a copy of the balances and
// returns the result: each transfer moves money from the sender toward zero
// and reduces what the recipient is owed.
func applyTransfers(balances map[int64]money.Money, transfers []Transfer) map[int64]money.Money {
	out := make(map[int64]money.Money, len(balances))
	for id, b := range balances {
		out[id] = b
	}
	for _, tr := range transfers {
		out[tr.FromMemberID] = out[tr.FromMemberID].Add(tr.Amount)
		out[tr.ToMemberID] = out[tr.ToMemberID].Sub(tr.Amount)
	}
	return out
}

func TestSimplifyDebts(t *testing.T) {
	tests := []struct {
		name     string
		balances map[int64]money.Money
		want     []Transfer
	}{
		{
			name:     "two debtors one creditor",
			balances: map[int64]money.Money{1: 6000, 2: -3000, 3: -3000},
			want: []Transfer{
				{FromMemberID: 2, ToMemberID: 1, Amount: 3000},
				{FromMemberID: 3, ToMemberID: 1, Amount: 3000},
			},
		},
		{
			name:     "largest obligation settles first",
			balances: map[int64]money.Money{1: 5000, 2: -2000, 3: -3000},
			want: []Transfer{
				{FromMemberID: 3, ToMemberID: 1, Amount: 3000},
				{FromMemberID: 2, ToMemberID: 1, Amount: 2000},
			},
		},
		{
			name:     "one debtor pays several creditors",
			balances: map[int64]money.Money{1: -9000, 2: 5000, 3: 4000},
			want: []Transfer{
				{FromMemberID: 1, ToMemberID: 2, Amount: 5000},
				{FromMemberID: 1, ToMemberID: 3, Amount: 4000},
			},
		},
		{
			name:     "creditor without debtors yields no transfers",
			balances: map[int64]money.Money{1: 10000},
			want:     nil,
		},
		{
			name:     "already settled",
			balances: map[int64]money.Money{1: 0, 2: 0},
			want:     nil,
		},
		{
			name:     "empty input",
			balances: map[int64]money.Money{},
			want:     nil,
		},
		{
			name:     "single minor unit is still a real debt",
			balances: map[int64]money.Money{1: 1, 2: -1},
			want: []Transfer{
				{FromMemberID: 2, ToMemberID: 1, Amount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SimplifyDebts(tt.balances)
			if err != nil {
				t.Fatalf("SimplifyDebts() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SimplifyDebts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimplifyDebtsUnbalanced(t *testing.T) {
	// More debt than credit: splits exceeded the expenses backing them.
	_, err := SimplifyDebts(map[int64]money.Money{1: 1000, 2: -5000})
	if !errors.Is(err, ErrUnbalanced) {
		t.Errorf("SimplifyDebts() error = %v, want ErrUnbalanced", err)
	}
}

// Settlement correctness: applying all transfers zeroes every balance when
// the input sums to zero.
func TestSimplifyDebtsSettlesExactly(t *testing.T) {
	cases := []map[int64]money.Money{
		{1: 6000, 2: -3000, 3: -3000},
		{1: 5000, 2: -2000, 3: -3000},
		{1: -101, 2: 34, 3: 34, 4: 33},
		{1: 12345, 2: -1, 3: -12344},
		{1: 0, 2: 750, 3: -250, 4: -500},
	}

	for _, balances := range cases {
		transfers, err := SimplifyDebts(balances)
		if err != nil {
			t.Fatalf("SimplifyDebts(%v) error = %v", balances, err)
		}

		after := applyTransfers(balances, transfers)
		for id, b := range after {
			if b != 0 {
				t.Errorf("balances %v: member %d left with %d after settlement", balances, id, b)
			}
		}

		// Minimality bound: at most one fewer transfer than non-zero balances.
		nonzero := 0
		for _, b := range balances {
			if b != 0 {
				nonzero++
			}
		}
		limit := nonzero - 1
		if limit < 0 {
			limit = 0
		}
		if len(transfers) > limit {
			t.Errorf("balances %v: %d transfers exceeds bound %d", balances, len(transfers), limit)
		}

		for _, tr := range transfers {
			if !tr.Amount.IsPositive() {
				t.Errorf("balances %v: non-positive transfer %v", balances, tr)
			}
		}
	}
}

// Idempotence: the same input always produces the same transfer list, even
// when balances tie and ordering falls back to member ids.
func TestSimplifyDebtsDeterministic(t *testing.T) {
	balances := map[int64]money.Money{5: -2000, 3: -2000, 9: 2000, 7: 2000}

	first, err := SimplifyDebts(balances)
	if err != nil {
		t.Fatalf("SimplifyDebts() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SimplifyDebts(balances)
		if err != nil {
			t.Fatalf("SimplifyDebts() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}

	// Ties break toward the lower member id.
	want := []Transfer{
		{FromMemberID: 3, ToMemberID: 7, Amount: 2000},
		{FromMemberID: 5, ToMemberID: 9, Amount: 2000},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("SimplifyDebts() = %v, want %v", first, want)
	}
}
