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

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	a.id, a.entity_id, a.name, a.type, a.currency, a.credit_limit, a.balance,
	a.active, a.created_at, a.updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var (
		acc                  account.Account
		typeStr, balance     string
		creditLimit          sql.NullString
	)

	if err := s.Scan(
		&acc.ID, &acc.EntityID, &acc.Name, &typeStr, &acc.Currency, &creditLimit, &balance,
		&acc.Active, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
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

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (id, entity_id, name, type, currency, credit_limit, balance, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, NOW())
		RETURNING created_at
	`

	var creditLimit any
	if acc.CreditLimit != nil {
		creditLimit = acc.CreditLimit.String()
	}

	err := s.db.QueryRowContext(ctx, query,
		acc.ID,
		acc.EntityID,
		acc.Name,
		acc.Type,
		acc.Currency,
		creditLimit,
		acc.Active,
	).Scan(&acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.id = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

// ListAccounts returns the entity's accounts, or every account when
// entityID is uuid.Nil.
func (s *Store) ListAccounts(ctx context.Context, entityID uuid.UUID) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts a
		WHERE ($1 = '00000000-0000-0000-0000-000000000000'::uuid OR a.entity_id = $1)
		ORDER BY a.name ASC`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE accounts SET active = FALSE, updated_at = NOW() WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deactivating account: %w", err)
	}

	return nil
}

func (s *Store) CountTransactions(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM raw_transactions WHERE account_id = $1 AND deleted_at IS NULL`

	var count int
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}

// RecomputeBalance derives the balance from raw transactions using the
// statement convention: credits flow in, debits flow out. The stored balance
// never disagrees with the ledger's own entries.
func (s *Store) RecomputeBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = COALESCE((
			SELECT SUM(COALESCE(credit, 0) - COALESCE(debit, 0))
			FROM raw_transactions
			WHERE account_id = $1 AND deleted_at IS NULL
		), 0), updated_at = NOW()
		WHERE id = $1
		RETURNING balance
	`

	var balance string
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("recomputing balance: %w", err)
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing balance: %w", err)
	}

	return parsed, nil
}
