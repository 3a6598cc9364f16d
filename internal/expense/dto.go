package expense

import "splitledger/internal/money"

// CreateExpenseRequest represents the request to create an expense.
// When ParticipantIDs is non-empty the amount is split evenly across them;
// when empty the expense is recorded without split rows and no settlement
// obligation is tracked for it.
type CreateExpenseRequest struct {
	GroupID        int64   `json:"group_id" validate:"required"`
	PayerID        int64   `json:"payer_id" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Category       string  `json:"category,omitempty"`
	Description    string  `json:"description,omitempty" validate:"omitempty,max=255"`
	ExpenseDate    string  `json:"expense_date,omitempty"` // YYYY-MM-DD, defaults to today
	ParticipantIDs []int64 `json:"participant_ids,omitempty"`
}

// UpdateExpenseRequest represents the request to update an expense. A new
// amount re-splits evenly across the expense's current participants.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=255"`
	ExpenseDate *string  `json:"expense_date,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	GroupID     int64            `json:"group_id"`
	PayerID     int64            `json:"payer_id"`
	PayerName   string           `json:"payer_name,omitempty"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	ExpenseDate string           `json:"expense_date"`
	CreatedAt   string           `json:"created_at"`
	Splits      []*SplitResponse `json:"splits,omitempty"`
}

// SplitResponse represents the response for a split row
type SplitResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expense_id"`
	MemberID   int64   `json:"member_id"`
	MemberName string  `json:"member_name,omitempty"`
	Amount     float64 `json:"amount"`
}

// SummaryResponse represents the response for a group spending summary
type SummaryResponse struct {
	TotalAll       float64            `json:"total_all"`
	TotalThisMonth float64            `json:"total_this_month"`
	TotalByMonth   map[string]float64 `json:"total_by_month"`
	ByCategory     map[string]float64 `json:"by_category"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		PayerName:   e.PayerName,
		Amount:      e.Amount.Float64(),
		Category:    e.Category,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts an ExpenseSplit model to a SplitResponse DTO
func (s *ExpenseSplit) ToResponse() *SplitResponse {
	return &SplitResponse{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		MemberID:   s.MemberID,
		MemberName: s.MemberName,
		Amount:     s.Amount.Float64(),
	}
}

// ToResponse converts a Summary to a SummaryResponse DTO
func (s *Summary) ToResponse() *SummaryResponse {
	byMonth := make(map[string]float64, len(s.TotalByMonth))
	for k, v := range s.TotalByMonth {
		byMonth[k] = v.Float64()
	}
	byCategory := make(map[string]float64, len(s.ByCategory))
	for k, v := range s.ByCategory {
		byCategory[k] = v.Float64()
	}
	return &SummaryResponse{
		TotalAll:       s.TotalAll.Float64(),
		TotalThisMonth: s.TotalThisMonth.Float64(),
		TotalByMonth:   byMonth,
		ByCategory:     byCategory,
	}
}

// moneyFromRequest converts a request amount into minor units
func moneyFromRequest(v float64) money.Money {
	return money.FromFloat(v)
}
