package expense

import (
	"context"
	"database/sql"
	"fmt"

	"splitledger/internal/ledger"
	"splitledger/internal/money"
)

// Repository handles expense and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithSplits inserts an expense and its split rows in one transaction
func (r *Repository) CreateWithSplits(ctx context.Context, e *Expense, shares []ledger.Share) (*ExpenseWithSplits, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (group_id, payer_id, amount, category, description, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.GroupID,
		e.PayerID,
		e.Amount.Units(),
		e.Category,
		e.Description,
		e.ExpenseDate,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	splits := make([]*ExpenseSplit, len(shares))
	for i, share := range shares {
		s := &ExpenseSplit{
			ExpenseID: e.ID,
			MemberID:  share.MemberID,
			Amount:    share.Amount,
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO expense_splits (expense_id, member_id, amount) VALUES ($1, $2, $3) RETURNING id`,
			s.ExpenseID, s.MemberID, s.Amount.Units(),
		).Scan(&s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create split: %w", err)
		}
		splits[i] = s
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &ExpenseWithSplits{Expense: e, Splits: splits}, nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.amount, e.category, e.description, e.expense_date, e.created_at, m.name
		FROM expenses e
		JOIN members m ON e.payer_id = m.id
		WHERE e.id = $1
	`

	e := &Expense{}
	var units int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.GroupID,
		&e.PayerID,
		&units,
		&e.Category,
		&e.Description,
		&e.ExpenseDate,
		&e.CreatedAt,
		&e.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	e.Amount = money.FromUnits(units)

	return e, nil
}

// GetSplitsByExpenseID retrieves all split rows for an expense
func (r *Repository) GetSplitsByExpenseID(ctx context.Context, expenseID int64) ([]*ExpenseSplit, error) {
	query := `
		SELECT s.id, s.expense_id, s.member_id, s.amount, m.name
		FROM expense_splits s
		JOIN members m ON s.member_id = m.id
		WHERE s.expense_id = $1
		ORDER BY s.member_id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*ExpenseSplit
	for rows.Next() {
		s := &ExpenseSplit{}
		var units int64
		if err := rows.Scan(&s.ID, &s.ExpenseID, &s.MemberID, &units, &s.MemberName); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		s.Amount = money.FromUnits(units)
		splits = append(splits, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return splits, nil
}

// ListByGroup retrieves a group's expenses, newest first
func (r *Repository) ListByGroup(ctx context.Context, groupID int64) ([]*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.amount, e.category, e.description, e.expense_date, e.created_at, m.name
		FROM expenses e
		JOIN members m ON e.payer_id = m.id
		WHERE e.group_id = $1
		ORDER BY e.expense_date DESC, e.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		var units int64
		err := rows.Scan(
			&e.ID,
			&e.GroupID,
			&e.PayerID,
			&units,
			&e.Category,
			&e.Description,
			&e.ExpenseDate,
			&e.CreatedAt,
			&e.PayerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = money.FromUnits(units)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// ListForLedger loads the snapshot the settlement engine folds: every
// expense of the group and every split row attached to those expenses
func (r *Repository) ListForLedger(ctx context.Context, groupID int64) ([]ledger.Expense, []ledger.Split, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payer_id, amount FROM expenses WHERE group_id = $1 ORDER BY id`,
		groupID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ledger.Expense
	for rows.Next() {
		var e ledger.Expense
		var units int64
		if err := rows.Scan(&e.ID, &e.PayerID, &units); err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = money.FromUnits(units)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splitRows, err := r.db.QueryContext(ctx, `
		SELECT s.expense_id, s.member_id, s.amount
		FROM expense_splits s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.group_id = $1
		ORDER BY s.expense_id, s.member_id
	`, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load splits: %w", err)
	}
	defer splitRows.Close()

	var splits []ledger.Split
	for splitRows.Next() {
		var s ledger.Split
		var units int64
		if err := splitRows.Scan(&s.ExpenseID, &s.MemberID, &units); err != nil {
			return nil, nil, fmt.Errorf("failed to scan split: %w", err)
		}
		s.Amount = money.FromUnits(units)
		splits = append(splits, s)
	}
	if err := splitRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expenses, splits, nil
}

// Update applies field changes to an expense
func (r *Repository) Update(ctx context.Context, e *Expense) error {
	query := `
		UPDATE expenses
		SET amount = $1, category = $2, description = $3, expense_date = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query,
		e.Amount.Units(), e.Category, e.Description, e.ExpenseDate, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// ReplaceSplits atomically swaps the full split set of an expense
func (r *Repository) ReplaceSplits(ctx context.Context, expenseID int64, shares []ledger.Share) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM expense_splits WHERE expense_id = $1`, expenseID,
	); err != nil {
		return fmt.Errorf("failed to clear splits: %w", err)
	}

	for _, share := range shares {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, member_id, amount) VALUES ($1, $2, $3)`,
			expenseID, share.MemberID, share.Amount.Units(),
		); err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes an expense and its splits in one transaction
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM expense_splits WHERE expense_id = $1`, id,
	); err != nil {
		return fmt.Errorf("failed to delete splits: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

