package group

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group with the given public code
func (r *Repository) Create(ctx context.Context, code, name string) (*Group, error) {
	query := `
		INSERT INTO groups (code, name)
		VALUES ($1, $2)
		RETURNING id, code, name, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, code, name).Scan(
		&group.ID,
		&group.Code,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByCode retrieves a group by its public code
func (r *Repository) GetByCode(ctx context.Context, code string) (*Group, error) {
	query := `SELECT id, code, name, created_at FROM groups WHERE code = $1`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&group.ID,
		&group.Code,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	query := `SELECT id, code, name, created_at FROM groups WHERE id = $1`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Code,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// UpdateName renames a group
func (r *Repository) UpdateName(ctx context.Context, id int64, name string) (*Group, error) {
	query := `
		UPDATE groups SET name = $1
		WHERE id = $2
		RETURNING id, code, name, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, name, id).Scan(
		&group.ID,
		&group.Code,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// Delete removes a group; members, expenses and splits cascade at the
// database level
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
