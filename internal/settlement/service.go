package settlement

import (
	"context"
	"errors"
	"log/slog"

	"splitledger/internal/expense"
	"splitledger/internal/ledger"
	"splitledger/internal/member"
)

// ErrLedgerCorrupt wraps an integrity violation detected while settling a
// group: the stored splits do not add up to the expenses backing them. It is
// never retried or silently corrected.
var ErrLedgerCorrupt = errors.New("group ledger is inconsistent")

// Service computes balances and settlement transfers for a group. It holds
// no state of its own: balances and transfers are derived on demand from the
// current expense and split rows and never persisted.
type Service struct {
	expenseRepo *expense.Repository
	memberRepo  *member.Repository
}

// NewService creates a new settlement service
func NewService(expenseRepo *expense.Repository, memberRepo *member.Repository) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		memberRepo:  memberRepo,
	}
}

// Balances returns every group member's net balance, including explicit
// zeros for members with no activity.
func (s *Service) Balances(ctx context.Context, groupID int64) ([]*BalanceResponse, error) {
	members, err := s.memberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	expenses, splits, err := s.expenseRepo.ListForLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(expenses, splits)
	if err != nil {
		slog.Error("balance computation rejected snapshot", "group_id", groupID, "error", err)
		return nil, errors.Join(ErrLedgerCorrupt, err)
	}

	resp := make([]*BalanceResponse, len(members))
	for i, m := range members {
		resp[i] = &BalanceResponse{
			MemberID:   m.ID,
			MemberName: m.Name,
			Amount:     balances[m.ID].Float64(),
		}
	}

	return resp, nil
}

// Transfers reduces the group's balances to the settlement plan: the
// minimal list of direct payments that zeroes every tracked obligation.
func (s *Service) Transfers(ctx context.Context, groupID int64) ([]*TransferResponse, error) {
	members, err := s.memberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	expenses, splits, err := s.expenseRepo.ListForLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(expenses, splits)
	if err != nil {
		slog.Error("balance computation rejected snapshot", "group_id", groupID, "error", err)
		return nil, errors.Join(ErrLedgerCorrupt, err)
	}

	transfers, err := ledger.SimplifyDebts(balances)
	if err != nil {
		slog.Error("settlement rejected balances", "group_id", groupID, "error", err)
		return nil, errors.Join(ErrLedgerCorrupt, err)
	}

	resp := make([]*TransferResponse, len(transfers))
	for i, tr := range transfers {
		resp[i] = &TransferResponse{
			FromMemberID: tr.FromMemberID,
			FromName:     names[tr.FromMemberID],
			ToMemberID:   tr.ToMemberID,
			ToName:       names[tr.ToMemberID],
			Amount:       tr.Amount.Float64(),
		}
	}

	return resp, nil
}
