package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/pairing"
)

// Pairing adapts the ledger store to the pairing engine's repository.
type Pairing struct {
	*Store
}

func NewPairing(db *sql.DB) *Pairing {
	return &Pairing{Store: New(db)}
}

type pairingTx struct {
	tx *sql.Tx
}

// Begin opens a database transaction for one match or unmatch operation.
func (s *Pairing) Begin(ctx context.Context) (pairing.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning pairing tx: %w", err)
	}

	return &pairingTx{tx: dbTx}, nil
}

func (p *pairingTx) Commit() error   { return p.tx.Commit() }
func (p *pairingTx) Rollback() error { return p.tx.Rollback() }

// SetMatched links the row to its partner only while it is unmatched. The
// WHERE guard is the compare-and-swap that makes a concurrent second match
// lose instead of overwriting the first link.
func (p *pairingTx) SetMatched(ctx context.Context, id, partner uuid.UUID) (bool, error) {
	query := `
		UPDATE main_transactions
		SET matched_transaction_id = $1, updated_at = NOW()
		WHERE id = $2 AND matched_transaction_id IS NULL
	`

	res, err := p.tx.ExecContext(ctx, query, partner, id)
	if err != nil {
		return false, fmt.Errorf("setting match: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking match update: %w", err)
	}

	return affected == 1, nil
}

func (p *pairingTx) ClearMatched(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE main_transactions
		SET matched_transaction_id = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := p.tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("clearing match: %w", err)
	}

	return nil
}

func (p *pairingTx) ClearDrawdownRef(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE main_transactions
		SET drawdown_id = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := p.tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("clearing drawdown ref: %w", err)
	}

	return nil
}

// DeleteTransaction removes the main transaction and soft-deletes its raw
// transaction, including any sibling main transactions of that raw.
func (p *pairingTx) DeleteTransaction(ctx context.Context, mainID uuid.UUID) error {
	var rawID string

	err := p.tx.QueryRowContext(ctx,
		`SELECT raw_transaction_id FROM main_transactions WHERE id = $1`, mainID).Scan(&rawID)
	if err != nil {
		return fmt.Errorf("resolving raw transaction: %w", err)
	}

	if _, err := p.tx.ExecContext(ctx,
		`DELETE FROM main_transactions WHERE raw_transaction_id = $1`, rawID); err != nil {
		return fmt.Errorf("deleting main transactions: %w", err)
	}

	if _, err := p.tx.ExecContext(ctx,
		`UPDATE raw_transactions SET deleted_at = NOW() WHERE id = $1`, rawID); err != nil {
		return fmt.Errorf("deleting raw transaction: %w", err)
	}

	return nil
}

func (p *pairingTx) ListCreditMemos(ctx context.Context, drawdownID uuid.UUID) ([]*ledger.MainTransaction, error) {
	query := `SELECT ` + selectMainColumns + `
		FROM main_transactions m
		WHERE m.credit_memo_of_drawdown_id = $1
		ORDER BY m.created_at ASC`

	rows, err := p.tx.QueryContext(ctx, query, drawdownID)
	if err != nil {
		return nil, fmt.Errorf("listing credit memos: %w", err)
	}
	defer rows.Close()

	var memos []*ledger.MainTransaction

	for rows.Next() {
		memo, err := scanMain(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning credit memo: %w", err)
		}

		memos = append(memos, memo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credit memos: %w", err)
	}

	return memos, nil
}

// RestoreDrawdownPrincipal puts an unwound repayment back onto the drawdown
// and reopens it when it was settled by that repayment.
func (p *pairingTx) RestoreDrawdownPrincipal(ctx context.Context, drawdownID uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE drawdowns
		SET remaining_balance = remaining_balance + $1,
			paid_amount = paid_amount - $1,
			status = CASE WHEN status = 'settled' THEN 'active' ELSE status END,
			updated_at = NOW()
		WHERE id = $2
	`

	if _, err := p.tx.ExecContext(ctx, query, amount.String(), drawdownID); err != nil {
		return fmt.Errorf("restoring drawdown principal: %w", err)
	}

	return nil
}
