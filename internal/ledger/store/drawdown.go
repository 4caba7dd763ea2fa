package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/drawdown"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const selectDrawdownColumns = `
	d.id, d.account_id, d.kind, d.counterparty_id, d.principal_amount, d.remaining_balance,
	d.paid_amount, d.written_off_amount, d.status, d.date, d.created_at, d.updated_at
`

func scanDrawdown(s scanner) (*drawdown.Drawdown, error) {
	var (
		dd                                   drawdown.Drawdown
		kindStr, statusStr                   string
		principal, remaining, paid, writeOff string
	)

	if err := s.Scan(
		&dd.ID, &dd.AccountID, &kindStr, &dd.CounterpartyID, &principal, &remaining,
		&paid, &writeOff, &statusStr, &dd.Date, &dd.CreatedAt, &dd.UpdatedAt,
	); err != nil {
		return nil, err
	}

	dd.Kind = drawdown.Kind(kindStr)
	dd.Status = drawdown.Status(statusStr)

	for _, field := range []struct {
		src string
		dst *decimal.Decimal
	}{
		{principal, &dd.Principal},
		{remaining, &dd.Remaining},
		{paid, &dd.Paid},
		{writeOff, &dd.WrittenOff},
	} {
		parsed, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("parsing drawdown amount: %w", err)
		}

		*field.dst = parsed
	}

	return &dd, nil
}

func (s *Store) GetDrawdown(ctx context.Context, id uuid.UUID) (*drawdown.Drawdown, error) {
	query := `SELECT ` + selectDrawdownColumns + ` FROM drawdowns d WHERE d.id = $1`

	dd, err := scanDrawdown(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting drawdown: %w", err)
	}

	return dd, nil
}

func (s *Store) ListDrawdowns(ctx context.Context, accountID uuid.UUID) ([]*drawdown.Drawdown, error) {
	query := `SELECT ` + selectDrawdownColumns + `
		FROM drawdowns d
		WHERE d.account_id = $1
		ORDER BY d.date ASC, d.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing drawdowns: %w", err)
	}
	defer rows.Close()

	var dds []*drawdown.Drawdown

	for rows.Next() {
		dd, err := scanDrawdown(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning drawdown: %w", err)
		}

		dds = append(dds, dd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drawdowns: %w", err)
	}

	return dds, nil
}

func (s *Store) GetCounterparty(ctx context.Context, id uuid.UUID) (*drawdown.Counterparty, error) {
	query := `SELECT c.id, c.entity_id, c.name FROM counterparties c WHERE c.id = $1`

	var cp drawdown.Counterparty
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&cp.ID, &cp.EntityID, &cp.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting counterparty: %w", err)
	}

	return &cp, nil
}

// Drawdowns adapts the ledger store to the drawdown service's repository.
type Drawdowns struct {
	*Store
}

func NewDrawdowns(db *sql.DB) *Drawdowns {
	return &Drawdowns{Store: New(db)}
}

type drawdownTx struct {
	tx *sql.Tx
}

// Begin opens the database transaction for one drawdown operation.
func (s *Drawdowns) Begin(ctx context.Context) (drawdown.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning drawdown tx: %w", err)
	}

	return &drawdownTx{tx: dbTx}, nil
}

func (d *drawdownTx) Commit() error   { return d.tx.Commit() }
func (d *drawdownTx) Rollback() error { return d.tx.Rollback() }

func (d *drawdownTx) CreateDrawdown(ctx context.Context, dd *drawdown.Drawdown) error {
	query := `
		INSERT INTO drawdowns
			(id, account_id, kind, counterparty_id, principal_amount, remaining_balance,
			 paid_amount, written_off_amount, status, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING created_at
	`

	err := d.tx.QueryRowContext(ctx, query,
		dd.ID,
		dd.AccountID,
		dd.Kind,
		dd.CounterpartyID,
		dd.Principal.String(),
		dd.Remaining.String(),
		dd.Paid.String(),
		dd.WrittenOff.String(),
		dd.Status,
		dd.Date,
	).Scan(&dd.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating drawdown: %w", err)
	}

	return nil
}

func (d *drawdownTx) UpdateDrawdown(ctx context.Context, dd *drawdown.Drawdown) error {
	query := `
		UPDATE drawdowns
		SET remaining_balance = $1, paid_amount = $2, written_off_amount = $3,
			status = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := d.tx.ExecContext(ctx, query,
		dd.Remaining.String(),
		dd.Paid.String(),
		dd.WrittenOff.String(),
		dd.Status,
		dd.ID,
	)
	if err != nil {
		return fmt.Errorf("updating drawdown: %w", err)
	}

	return nil
}

func (d *drawdownTx) CreateTransaction(ctx context.Context, raw *ledger.RawTransaction, main *ledger.MainTransaction) error {
	if err := lockAccount(ctx, d.tx, raw.AccountID); err != nil {
		return err
	}

	if err := insertRaw(ctx, d.tx, raw); err != nil {
		return err
	}

	return insertMain(ctx, d.tx, main)
}

func (d *drawdownTx) SetMatched(ctx context.Context, id, partner uuid.UUID) (bool, error) {
	query := `
		UPDATE main_transactions
		SET matched_transaction_id = $1, updated_at = NOW()
		WHERE id = $2 AND matched_transaction_id IS NULL
	`

	res, err := d.tx.ExecContext(ctx, query, partner, id)
	if err != nil {
		return false, fmt.Errorf("setting match: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking match update: %w", err)
	}

	return affected == 1, nil
}
