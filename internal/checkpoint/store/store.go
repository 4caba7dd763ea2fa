package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCheckpointColumns = `
	c.id, c.account_id, c.checkpoint_date, c.declared_balance, c.calculated_balance,
	c.import_batch_id, c.created_at
`

func scanCheckpoint(s scanner) (*checkpoint.Checkpoint, error) {
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

	parsed, err := decimal.NewFromString(declared)
	if err != nil {
		return nil, fmt.Errorf("parsing declared balance: %w", err)
	}

	cp.DeclaredBalance = parsed

	if calculated.Valid {
		calc, err := decimal.NewFromString(calculated.String)
		if err != nil {
			return nil, fmt.Errorf("parsing calculated balance: %w", err)
		}

		cp.CalculatedBalance = &calc
	}

	return &cp, nil
}

func (s *Store) UpsertCheckpoint(ctx context.Context, cp *checkpoint.Checkpoint) error {
	query := `
		INSERT INTO balance_checkpoints (id, account_id, checkpoint_date, declared_balance, import_batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (account_id, checkpoint_date)
		DO UPDATE SET declared_balance = EXCLUDED.declared_balance, import_batch_id = EXCLUDED.import_batch_id
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cp.ID,
		cp.AccountID,
		cp.Date,
		cp.DeclaredBalance.String(),
		cp.ImportBatchID,
	).Scan(&cp.ID, &cp.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting checkpoint: %w", err)
	}

	return nil
}

func (s *Store) GetCheckpoint(ctx context.Context, id uuid.UUID) (*checkpoint.Checkpoint, error) {
	query := `SELECT ` + selectCheckpointColumns + ` FROM balance_checkpoints c WHERE c.id = $1`

	cp, err := scanCheckpoint(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting checkpoint: %w", err)
	}

	return cp, nil
}

func (s *Store) ListCheckpoints(ctx context.Context, accountID uuid.UUID) ([]*checkpoint.Checkpoint, error) {
	query := `SELECT ` + selectCheckpointColumns + `
		FROM balance_checkpoints c
		WHERE c.account_id = $1
		ORDER BY c.checkpoint_date ASC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing checkpoints: %w", err)
	}
	defer rows.Close()

	var cps []*checkpoint.Checkpoint

	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning checkpoint: %w", err)
		}

		cps = append(cps, cp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkpoints: %w", err)
	}

	return cps, nil
}

func (s *Store) DeleteCheckpoint(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM balance_checkpoints WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting checkpoint: %w", err)
	}

	return nil
}

func (s *Store) SetCalculatedBalance(ctx context.Context, id uuid.UUID, calculated decimal.Decimal) error {
	query := `UPDATE balance_checkpoints SET calculated_balance = $1 WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, calculated.String(), id); err != nil {
		return fmt.Errorf("setting calculated balance: %w", err)
	}

	return nil
}
