package expense

import (
	"testing"
	"time"

	"splitledger/internal/money"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarize(t *testing.T) {
	now := date("2026-09-15")
	expenses := []*Expense{
		{Amount: money.FromUnits(9000), Category: "food", ExpenseDate: date("2026-09-01")},
		{Amount: money.FromUnits(2500), Category: "transport", ExpenseDate: date("2026-09-10")},
		{Amount: money.FromUnits(4000), Category: "food", ExpenseDate: date("2026-08-20")},
		{Amount: money.FromUnits(100), Category: "", ExpenseDate: date("2026-07-05")},
	}

	s := Summarize(expenses, now)

	if s.TotalAll != 15600 {
		t.Errorf("TotalAll = %d, want 15600", s.TotalAll)
	}
	if s.TotalThisMonth != 11500 {
		t.Errorf("TotalThisMonth = %d, want 11500", s.TotalThisMonth)
	}
	if got := s.TotalByMonth["2026-09"]; got != 11500 {
		t.Errorf("TotalByMonth[2026-09] = %d, want 11500", got)
	}
	if got := s.TotalByMonth["2026-08"]; got != 4000 {
		t.Errorf("TotalByMonth[2026-08] = %d, want 4000", got)
	}
	if got := s.ByCategory["food"]; got != 13000 {
		t.Errorf("ByCategory[food] = %d, want 13000", got)
	}
	if got := s.ByCategory["other"]; got != 100 {
		t.Errorf("ByCategory[other] = %d, want 100 (empty category defaults)", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	if s.TotalAll != 0 || s.TotalThisMonth != 0 {
		t.Errorf("empty summary has totals %d / %d, want zeros", s.TotalAll, s.TotalThisMonth)
	}
	if len(s.TotalByMonth) != 0 || len(s.ByCategory) != 0 {
		t.Errorf("empty summary has non-empty maps")
	}
}
