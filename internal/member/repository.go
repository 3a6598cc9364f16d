package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"splitledger/internal/ledger"
	"splitledger/internal/money"
)

// ErrConflict means a member-removal transaction collided with a concurrent
// change to the group's expenses or splits. The whole removal rolls back;
// the caller may retry.
var ErrConflict = errors.New("concurrent modification of expense splits")

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListByGroup retrieves all members of a group, oldest first
func (r *Repository) ListByGroup(ctx context.Context, groupID int64) ([]*Member, error) {
	query := `
		SELECT id, group_id, name, created_at
		FROM members
		WHERE group_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.GroupID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// GetByID retrieves a member by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	query := `SELECT id, group_id, name, created_at FROM members WHERE id = $1`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.GroupID, &m.Name, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// ExistsByName checks whether the group already has a member with this name,
// case-insensitively
func (r *Repository) ExistsByName(ctx context.Context, groupID int64, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE group_id = $1 AND LOWER(name) = LOWER($2))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, groupID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member name: %w", err)
	}

	return exists, nil
}

// ExistsByNameExcept is ExistsByName ignoring one member's own row, so a
// rename that only changes letter case is not flagged against itself
func (r *Repository) ExistsByNameExcept(ctx context.Context, groupID int64, name string, memberID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE group_id = $1 AND LOWER(name) = LOWER($2) AND id <> $3)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, groupID, name, memberID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member name: %w", err)
	}

	return exists, nil
}

// Create inserts a new member into a group
func (r *Repository) Create(ctx context.Context, groupID int64, name string) (*Member, error) {
	query := `
		INSERT INTO members (group_id, name)
		VALUES ($1, $2)
		RETURNING id, group_id, name, created_at
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, name).Scan(&m.ID, &m.GroupID, &m.Name, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return m, nil
}

// UpdateName renames a member
func (r *Repository) UpdateName(ctx context.Context, id int64, name string) (*Member, error) {
	query := `
		UPDATE members SET name = $1
		WHERE id = $2
		RETURNING id, group_id, name, created_at
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, name, id).Scan(&m.ID, &m.GroupID, &m.Name, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return m, nil
}

// RemoveWithRecalc removes a member and restores the splits-sum-to-amount
// invariant for every expense they participated in. The whole sequence runs
// in one serializable transaction so a concurrent removal or expense edit
// cannot interleave:
//
//  1. expenses the member paid are deleted outright, splits included
//  2. expenses the member merely shared are re-split evenly among the
//     remaining participants, rounding remainder to the lowest member id
//  3. leftover split rows and the member row itself are deleted
//
// An UPDATE that touches an unexpected number of rows aborts the whole thing
// with ErrConflict and nothing is applied. A serialization failure reported
// by Postgres maps to ErrConflict the same way.
func (r *Repository) RemoveWithRecalc(ctx context.Context, groupID, memberID int64) error {
	return mapTxError(r.removeWithRecalc(ctx, groupID, memberID))
}

func (r *Repository) removeWithRecalc(ctx context.Context, groupID, memberID int64) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Step 1: expenses paid by the member lose their responsible payer and
	// are deleted in full.
	paidIDs, err := scanIDs(tx.QueryContext(ctx,
		`SELECT id FROM expenses WHERE group_id = $1 AND payer_id = $2`,
		groupID, memberID,
	))
	if err != nil {
		return fmt.Errorf("failed to list paid expenses: %w", err)
	}
	if len(paidIDs) > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM expense_splits WHERE expense_id = ANY($1)`,
			pq.Array(paidIDs),
		); err != nil {
			return fmt.Errorf("failed to delete splits of paid expenses: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM expenses WHERE id = ANY($1)`,
			pq.Array(paidIDs),
		); err != nil {
			return fmt.Errorf("failed to delete paid expenses: %w", err)
		}
	}

	// Step 2: expenses where the member held a split (but was not the
	// payer) get their total re-split among the remaining participants.
	rows, err := tx.QueryContext(ctx, `
		SELECT DISTINCT e.id, e.amount
		FROM expenses e
		JOIN expense_splits s ON s.expense_id = e.id
		WHERE e.group_id = $1 AND s.member_id = $2
	`, groupID, memberID)
	if err != nil {
		return fmt.Errorf("failed to list shared expenses: %w", err)
	}

	type affected struct {
		id     int64
		amount money.Money
	}
	var toRecalc []affected
	for rows.Next() {
		var a affected
		var units int64
		if err := rows.Scan(&a.id, &units); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan shared expense: %w", err)
		}
		a.amount = money.FromUnits(units)
		toRecalc = append(toRecalc, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate shared expenses: %w", err)
	}

	for _, exp := range toRecalc {
		remaining, err := scanIDs(tx.QueryContext(ctx,
			`SELECT member_id FROM expense_splits WHERE expense_id = $1 AND member_id <> $2 ORDER BY member_id`,
			exp.id, memberID,
		))
		if err != nil {
			return fmt.Errorf("failed to list remaining participants: %w", err)
		}

		// No participants left: the expense keeps no splits and no
		// obligation is tracked for it.
		shares := ledger.RedistributeEven(exp.amount, remaining)
		for _, share := range shares {
			result, err := tx.ExecContext(ctx,
				`UPDATE expense_splits SET amount = $1 WHERE expense_id = $2 AND member_id = $3`,
				share.Amount.Units(), exp.id, share.MemberID,
			)
			if err != nil {
				return fmt.Errorf("failed to update split: %w", err)
			}
			updated, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to check updated rows: %w", err)
			}
			if updated != 1 {
				return fmt.Errorf("expense %d, member %d: %w", exp.id, share.MemberID, ErrConflict)
			}
		}
	}

	// Step 3: orphan cleanup, then the member row.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM expense_splits WHERE member_id = $1`,
		memberID,
	); err != nil {
		return fmt.Errorf("failed to delete member splits: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM members WHERE id = $1 AND group_id = $2`,
		memberID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if deleted == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// scanIDs collects a single int64 column from a query result.
func scanIDs(rows *sql.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// mapTxError classifies errors escaping a removal transaction. Under
// serializable isolation an interleaved write surfaces as a serialization
// failure (40001) or deadlock (40P01) at the statement or at COMMIT; both
// mean the same thing as a row-count mismatch and map to ErrConflict so the
// caller can retry.
func mapTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == "40001" || pqErr.Code == "40P01") {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
