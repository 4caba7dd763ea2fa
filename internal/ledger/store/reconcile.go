package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Reconcile adapts the ledger store to the reconciliation engine's
// repository. All of it is read-only.
type Reconcile struct {
	*Store
}

func NewReconcile(db *sql.DB) *Reconcile {
	return &Reconcile{Store: New(db)}
}

func scanCheckpointRow(s scanner) (*checkpoint.Checkpoint, error) {
	var (
		cp         checkpoint.Checkpoint
		declared   string
		calculated sql.NullString
	)

	if err := s.Scan(
		&cp.ID, &cp.AccountID, &cp.Date, &declared, &calculated, &cp.ImportBatchID, &cp.CreatedAt,
	); err != nil {
		return nil, err
	}

	balance, err := nullDecimal(sql.NullString{String: declared, Valid: true})
	if err != nil {
		return nil, err
	}

	cp.DeclaredBalance = *balance

	if cp.CalculatedBalance, err = nullDecimal(calculated); err != nil {
		return nil, err
	}

	return &cp, nil
}

const selectCheckpointCols = `
	c.id, c.account_id, c.checkpoint_date, c.declared_balance, c.calculated_balance,
	c.import_batch_id, c.created_at
`

func (r *Reconcile) GetCheckpoint(ctx context.Context, id uuid.UUID) (*checkpoint.Checkpoint, error) {
	query := `SELECT ` + selectCheckpointCols + ` FROM balance_checkpoints c WHERE c.id = $1`

	cp, err := scanCheckpointRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting checkpoint: %w", err)
	}

	return cp, nil
}

func (r *Reconcile) LatestCheckpoint(ctx context.Context, accountID uuid.UUID) (*checkpoint.Checkpoint, error) {
	query := `SELECT ` + selectCheckpointCols + `
		FROM balance_checkpoints c
		WHERE c.account_id = $1
		ORDER BY c.checkpoint_date DESC
		LIMIT 1`

	cp, err := scanCheckpointRow(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting latest checkpoint: %w", err)
	}

	return cp, nil
}

func (r *Reconcile) PreviousCheckpoint(ctx context.Context, accountID uuid.UUID, before time.Time) (*checkpoint.Checkpoint, error) {
	query := `SELECT ` + selectCheckpointCols + `
		FROM balance_checkpoints c
		WHERE c.account_id = $1 AND c.checkpoint_date < $2
		ORDER BY c.checkpoint_date DESC
		LIMIT 1`

	cp, err := scanCheckpointRow(r.db.QueryRowContext(ctx, query, accountID, before))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting previous checkpoint: %w", err)
	}

	return cp, nil
}

// ListWindow returns raw transactions in (after, until], ordered by
// (date, sequence). The order is a correctness requirement for the walk.
func (r *Reconcile) ListWindow(ctx context.Context, accountID uuid.UUID, after *time.Time, until time.Time) ([]*ledger.RawTransaction, error) {
	query := `SELECT ` + selectRawColumns + `
		FROM raw_transactions r
		WHERE r.deleted_at IS NULL AND r.account_id = $1 AND r.date <= $2`

	args := []any{accountID, until}

	if after != nil {
		query += ` AND r.date > $3`

		args = append(args, *after)
	}

	query += ` ORDER BY r.date ASC, r.sequence ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing window: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.RawTransaction

	for rows.Next() {
		raw, err := scanRaw(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning raw transaction: %w", err)
		}

		txs = append(txs, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating window rows: %w", err)
	}

	return txs, nil
}
