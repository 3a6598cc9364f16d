package member

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMapTxError(t *testing.T) {
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	deadlock := &pq.Error{Code: "40P01", Message: "deadlock detected"}
	duplicate := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

	tests := []struct {
		name         string
		err          error
		wantConflict bool
	}{
		{
			name:         "serialization failure wrapped mid-transaction",
			err:          fmt.Errorf("failed to update split: %w", serialization),
			wantConflict: true,
		},
		{
			name:         "serialization failure at commit",
			err:          fmt.Errorf("failed to commit transaction: %w", serialization),
			wantConflict: true,
		},
		{
			name:         "deadlock",
			err:          deadlock,
			wantConflict: true,
		},
		{
			name:         "unrelated postgres error",
			err:          duplicate,
			wantConflict: false,
		},
		{
			name:         "plain error",
			err:          errors.New("connection reset"),
			wantConflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapTxError(tt.err)
			if conflict := errors.Is(got, ErrConflict); conflict != tt.wantConflict {
				t.Errorf("mapTxError(%v): errors.Is(ErrConflict) = %v, want %v", tt.err, conflict, tt.wantConflict)
			}
		})
	}

	if got := mapTxError(nil); got != nil {
		t.Errorf("mapTxError(nil) = %v, want nil", got)
	}
}
