package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// GetAccount resolves an account for pairing and drawdown precondition
// checks. Account lifecycle writes live in the account store; this is a
// read-only view over the same table.
func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `
		SELECT a.id, a.entity_id, a.name, a.type, a.currency, a.credit_limit, a.balance,
			a.active, a.created_at, a.updated_at
		FROM accounts a
		WHERE a.id = $1
	`

	var (
		acc              account.Account
		typeStr, balance string
		creditLimit      sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&acc.ID, &acc.EntityID, &acc.Name, &typeStr, &acc.Currency, &creditLimit, &balance,
		&acc.Active, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parsing balance: %w", err)
	}

	acc.Type = account.Type(typeStr)
	acc.Balance = parsed

	if creditLimit.Valid {
		limit, err := decimal.NewFromString(creditLimit.String)
		if err != nil {
			return nil, fmt.Errorf("parsing credit limit: %w", err)
		}

		acc.CreditLimit = &limit
	}

	return &acc, nil
}
