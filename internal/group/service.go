package group

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group with a generated public code
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	code := uuid.NewString()
	return s.repo.Create(ctx, code, req.Name)
}

// GetByCode retrieves a group by its public code
func (s *Service) GetByCode(ctx context.Context, code string) (*Group, error) {
	group, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Rename changes a group's display name
func (s *Service) Rename(ctx context.Context, code string, req *UpdateGroupRequest) (*Group, error) {
	group, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateName(ctx, group.ID, req.Name)
}

// Delete removes a group and everything it owns
func (s *Service) Delete(ctx context.Context, code string) error {
	group, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, group.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGroupNotFound
		}
		return err
	}
	return nil
}
