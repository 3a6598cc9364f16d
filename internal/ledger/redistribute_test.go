package ledger

import (
	"reflect"
	"testing"

	"splitledger/internal/money"
)

func TestRedistributeEven(t *testing.T) {
	tests := []struct {
		name      string
		total     money.Money
		memberIDs []int64
		want      []Share
	}{
		{
			name:      "three-way split becomes two-way after removal",
			total:     9000,
			memberIDs: []int64{1, 2},
			want: []Share{
				{MemberID: 1, Amount: 4500},
				{MemberID: 2, Amount: 4500},
			},
		},
		{
			name:      "sole remaining participant absorbs the full amount",
			total:     4000,
			memberIDs: []int64{2},
			want: []Share{
				{MemberID: 2, Amount: 4000},
			},
		},
		{
			name:      "remainder goes to the lowest member id",
			total:     10000,
			memberIDs: []int64{8, 2, 5},
			want: []Share{
				{MemberID: 2, Amount: 3334},
				{MemberID: 5, Amount: 3333},
				{MemberID: 8, Amount: 3333},
			},
		},
		{
			name:      "no remaining participants",
			total:     5000,
			memberIDs: nil,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RedistributeEven(tt.total, tt.memberIDs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RedistributeEven() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Shares always sum back to the expense total, whatever the remainder.
func TestRedistributeEvenPreservesTotal(t *testing.T) {
	totals := []money.Money{1, 99, 100, 101, 9999, 10000, 123457}
	members := [][]int64{{1}, {1, 2}, {3, 1, 2}, {10, 20, 30, 40, 50, 60, 70}}

	for _, total := range totals {
		for _, ids := range members {
			shares := RedistributeEven(total, ids)
			if len(shares) != len(ids) {
				t.Fatalf("RedistributeEven(%d, %v) returned %d shares", total, ids, len(shares))
			}
			var sum money.Money
			for _, sh := range shares {
				sum = sum.Add(sh.Amount)
			}
			if sum != total {
				t.Errorf("RedistributeEven(%d, %v) shares sum to %d", total, ids, sum)
			}
		}
	}
}

// RedistributeEven must not mutate the caller's slice ordering.
func TestRedistributeEvenLeavesInputIntact(t *testing.T) {
	ids := []int64{9, 1, 5}
	RedistributeEven(300, ids)
	if !reflect.DeepEqual(ids, []int64{9, 1, 5}) {
		t.Errorf("input slice reordered: %v", ids)
	}
}
