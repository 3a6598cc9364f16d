package settlement

// BalanceResponse is one member's net position in the group. Positive means
// the group owes them, negative means they owe the group.
type BalanceResponse struct {
	MemberID   int64   `json:"member_id"`
	MemberName string  `json:"member_name"`
	Amount     float64 `json:"amount"`
}

// TransferResponse is one payment instruction: From pays To the amount
type TransferResponse struct {
	FromMemberID int64   `json:"from_member_id"`
	FromName     string  `json:"from_name"`
	ToMemberID   int64   `json:"to_member_id"`
	ToName       string  `json:"to_name"`
	Amount       float64 `json:"amount"`
}
