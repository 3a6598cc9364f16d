package expense

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"splitledger/internal/ledger"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidDate     = errors.New("expense date must be YYYY-MM-DD")
)

const defaultCategory = "other"

// Service handles expense business logic
type Service struct {
	repo *Repository
}

// NewService creates a new expense service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records an expense. When participants are given, the amount is
// split evenly across them with the rounding remainder assigned to the
// lowest member id, so the splits sum to the amount exactly. Without
// participants no split rows are written and no settlement obligation is
// tracked.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	amount := moneyFromRequest(req.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	e := &Expense{
		GroupID:     req.GroupID,
		PayerID:     req.PayerID,
		Amount:      amount,
		Category:    category,
		Description: req.Description,
		ExpenseDate: date,
	}

	shares := ledger.RedistributeEven(amount, req.ParticipantIDs)
	result, err := s.repo.CreateWithSplits(ctx, e, shares)
	if err != nil {
		return nil, err
	}

	slog.Info("expense created",
		"expense_id", e.ID, "group_id", e.GroupID, "amount", amount.String(), "splits", len(shares))
	return result, nil
}

// GetByID retrieves an expense with its splits
func (s *Service) GetByID(ctx context.Context, id int64) (*ExpenseWithSplits, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: e, Splits: splits}, nil
}

// ListByGroup retrieves a group's expenses, newest first
func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]*Expense, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// Summary computes spending totals for a group
func (s *Service) Summary(ctx context.Context, groupID int64) (*Summary, error) {
	expenses, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return Summarize(expenses, time.Now().UTC()), nil
}

// Update modifies an expense. A changed amount is re-split evenly across the
// expense's current participants so the splits keep summing to the amount.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*ExpenseWithSplits, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	resplit := false
	if req.Amount != nil {
		amount := moneyFromRequest(*req.Amount)
		if !amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		if amount != e.Amount {
			e.Amount = amount
			resplit = true
		}
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.ExpenseDate != nil {
		date, err := parseDate(*req.ExpenseDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		e.ExpenseDate = date
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	if resplit {
		splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(splits) > 0 {
			memberIDs := make([]int64, len(splits))
			for i, split := range splits {
				memberIDs[i] = split.MemberID
			}
			shares := ledger.RedistributeEven(e.Amount, memberIDs)
			if err := s.repo.ReplaceSplits(ctx, id, shares); err != nil {
				return nil, err
			}
		}
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ExpenseWithSplits{Expense: e, Splits: splits}, nil
}

// Delete removes an expense and its splits
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}

// parseDate parses a YYYY-MM-DD request date, defaulting to today
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}
