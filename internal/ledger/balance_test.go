package ledger

import (
	"errors"
	"testing"

	"splitledger/internal/money"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name     string
		expenses []Expense
		splits   []Split
		want     map[int64]money.Money
	}{
		{
			name: "one expense split evenly across three members",
			expenses: []Expense{
				{ID: 1, PayerID: 1, Amount: 9000},
			},
			splits: []Split{
				{ExpenseID: 1, MemberID: 1, Amount: 3000},
				{ExpenseID: 1, MemberID: 2, Amount: 3000},
				{ExpenseID: 1, MemberID: 3, Amount: 3000},
			},
			want: map[int64]money.Money{1: 6000, 2: -3000, 3: -3000},
		},
		{
			name: "unapportioned expense credits only the payer",
			expenses: []Expense{
				{ID: 1, PayerID: 1, Amount: 10000},
			},
			splits: nil,
			want:   map[int64]money.Money{1: 10000},
		},
		{
			name: "mutual expenses cancel out",
			expenses: []Expense{
				{ID: 1, PayerID: 1, Amount: 4000},
				{ID: 2, PayerID: 2, Amount: 4000},
			},
			splits: []Split{
				{ExpenseID: 1, MemberID: 2, Amount: 4000},
				{ExpenseID: 2, MemberID: 1, Amount: 4000},
			},
			want: map[int64]money.Money{1: 0, 2: 0},
		},
		{
			name:     "no activity",
			expenses: nil,
			splits:   nil,
			want:     map[int64]money.Money{},
		},
		{
			name: "payer owes part of their own expense",
			expenses: []Expense{
				{ID: 7, PayerID: 4, Amount: 4000},
			},
			splits: []Split{
				{ExpenseID: 7, MemberID: 4, Amount: 2000},
				{ExpenseID: 7, MemberID: 5, Amount: 2000},
			},
			want: map[int64]money.Money{4: 2000, 5: -2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBalances(tt.expenses, tt.splits)
			if err != nil {
				t.Fatalf("ComputeBalances() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d balances, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("balance[%d] = %d, want %d", id, got[id], want)
				}
			}
		})
	}
}

func TestComputeBalancesUnknownExpense(t *testing.T) {
	_, err := ComputeBalances(
		[]Expense{{ID: 1, PayerID: 1, Amount: 1000}},
		[]Split{{ExpenseID: 99, MemberID: 2, Amount: 1000}},
	)
	if !errors.Is(err, ErrUnknownExpense) {
		t.Errorf("ComputeBalances() error = %v, want ErrUnknownExpense", err)
	}
}

// Conservation: whenever every expense's splits sum to its amount, the
// balances sum to exactly zero.
func TestComputeBalancesConservation(t *testing.T) {
	expenses := []Expense{
		{ID: 1, PayerID: 1, Amount: 10000},
		{ID: 2, PayerID: 2, Amount: 101},
		{ID: 3, PayerID: 3, Amount: 7777},
	}
	var splits []Split
	for _, e := range expenses {
		shares := RedistributeEven(e.Amount, []int64{1, 2, 3})
		for _, sh := range shares {
			splits = append(splits, Split{ExpenseID: e.ID, MemberID: sh.MemberID, Amount: sh.Amount})
		}
	}

	balances, err := ComputeBalances(expenses, splits)
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}

	var sum money.Money
	for _, b := range balances {
		sum = sum.Add(b)
	}
	if sum != 0 {
		t.Errorf("balances sum to %d, want exactly 0", sum)
	}
}
