package store

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// ReplaceMainTransactions swaps a raw transaction's main transactions for the
// given set in one database transaction.
func (s *Store) ReplaceMainTransactions(ctx context.Context, rawID string, mains []*ledger.MainTransaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM main_transactions WHERE raw_transaction_id = $1`, rawID); err != nil {
		return fmt.Errorf("deleting main transactions: %w", err)
	}

	for _, main := range mains {
		if err := insertMain(ctx, dbTx, main); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
