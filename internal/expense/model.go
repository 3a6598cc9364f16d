package expense

import (
	"time"

	"splitledger/internal/money"
)

// Expense represents money spent by one member on behalf of the group
type Expense struct {
	ID          int64       `json:"id"`
	GroupID     int64       `json:"group_id"`
	PayerID     int64       `json:"payer_id"`
	Amount      money.Money `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	ExpenseDate time.Time   `json:"expense_date"`
	CreatedAt   time.Time   `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// ExpenseSplit attributes a share of an expense to one participant as a
// debt to the payer. For every expense that has split rows, the shares sum
// exactly to the expense amount.
type ExpenseSplit struct {
	ID        int64       `json:"id"`
	ExpenseID int64       `json:"expense_id"`
	MemberID  int64       `json:"member_id"`
	Amount    money.Money `json:"amount"`

	// Populated via JOIN
	MemberName string `json:"member_name,omitempty"`
}

// ExpenseWithSplits combines an expense with its split rows
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*ExpenseSplit
}
