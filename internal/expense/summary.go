package expense

import (
	"time"

	"splitledger/internal/money"
)

// Summary aggregates a group's spending. Totals are exact minor-unit sums;
// months are keyed as YYYY-MM.
type Summary struct {
	TotalAll       money.Money
	TotalThisMonth money.Money
	TotalByMonth   map[string]money.Money
	ByCategory     map[string]money.Money
}

// Summarize folds a list of expenses into totals relative to now.
func Summarize(expenses []*Expense, now time.Time) *Summary {
	s := &Summary{
		TotalByMonth: make(map[string]money.Money),
		ByCategory:   make(map[string]money.Money),
	}

	thisMonth := monthKey(now)
	for _, e := range expenses {
		s.TotalAll = s.TotalAll.Add(e.Amount)

		key := monthKey(e.ExpenseDate)
		s.TotalByMonth[key] = s.TotalByMonth[key].Add(e.Amount)
		if key == thisMonth {
			s.TotalThisMonth = s.TotalThisMonth.Add(e.Amount)
		}

		category := e.Category
		if category == "" {
			category = defaultCategory
		}
		s.ByCategory[category] = s.ByCategory[category].Add(e.Amount)
	}

	return s
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
