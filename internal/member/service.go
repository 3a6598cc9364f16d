package member

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
)

// Common errors
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("member with this name already exists in the group")
)

// store is the persistence surface the service needs, satisfied by Repository
type store interface {
	ListByGroup(ctx context.Context, groupID int64) ([]*Member, error)
	GetByID(ctx context.Context, id int64) (*Member, error)
	ExistsByName(ctx context.Context, groupID int64, name string) (bool, error)
	ExistsByNameExcept(ctx context.Context, groupID int64, name string, memberID int64) (bool, error)
	Create(ctx context.Context, groupID int64, name string) (*Member, error)
	UpdateName(ctx context.Context, id int64, name string) (*Member, error)
	RemoveWithRecalc(ctx context.Context, groupID, memberID int64) error
}

// Service handles member business logic
type Service struct {
	repo store
}

// NewService creates a new member service
func NewService(repo store) *Service {
	return &Service{repo: repo}
}

// ListByGroup retrieves all members of a group
func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]*Member, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// Add creates a member, enforcing case-insensitive name uniqueness per group
func (s *Service) Add(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	exists, err := s.repo.ExistsByName(ctx, groupID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.Create(ctx, groupID, req.Name)
}

// Rename changes a member's display name
func (s *Service) Rename(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMemberNotFound
	}

	exists, err := s.repo.ExistsByNameExcept(ctx, existing.GroupID, req.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.UpdateName(ctx, id, req.Name)
}

// Remove deletes a member from a group, recalculating the splits of every
// expense they took part in. Expenses the member paid are deleted; expenses
// they shared are re-split among the remaining participants so each
// expense's splits still sum to its amount.
func (s *Service) Remove(ctx context.Context, groupID, memberID int64) error {
	existing, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if existing == nil || existing.GroupID != groupID {
		return ErrMemberNotFound
	}

	if err := s.repo.RemoveWithRecalc(ctx, groupID, memberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMemberNotFound
		}
		if errors.Is(err, ErrConflict) {
			slog.Warn("member removal aborted on conflict",
				"group_id", groupID, "member_id", memberID, "error", err)
		}
		return err
	}

	slog.Info("member removed", "group_id", groupID, "member_id", memberID)
	return nil
}
