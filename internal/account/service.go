package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, entityID uuid.UUID) ([]*Account, error)
	DeactivateAccount(ctx context.Context, id uuid.UUID) error
	CountTransactions(ctx context.Context, id uuid.UUID) (int, error)

	// RecomputeBalance sums the account's raw transactions (credits minus
	// debits, statement convention) and stores the result.
	RecomputeBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	EntityID    uuid.UUID
	Name        string
	Type        Type
	Currency    string
	CreditLimit *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if params.Name == "" {
		return nil, ledger.Invalidf("account name is required")
	}

	if params.CreditLimit != nil && !params.Type.IsDebtSide() {
		return nil, ledger.Invalidf("credit limit only applies to debt accounts, got type %q", params.Type)
	}

	acc := &Account{
		ID:          uuid.New(),
		EntityID:    params.EntityID,
		Name:        params.Name,
		Type:        params.Type,
		Currency:    params.Currency,
		CreditLimit: params.CreditLimit,
		Active:      true,
	}

	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context, entityID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, entityID)
}

// Deactivate soft-disables the account. Accounts with transactions are never
// hard-deleted.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetAccount(ctx, id); err != nil {
		return err
	}

	return s.repo.DeactivateAccount(ctx, id)
}

// Delete rejects accounts that already carry transactions; those can only be
// deactivated.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountTransactions(ctx, id)
	if err != nil {
		return fmt.Errorf("counting transactions: %w", err)
	}

	if count > 0 {
		return ledger.Invalidf("account has %d transactions and can only be deactivated", count)
	}

	return s.repo.DeactivateAccount(ctx, id)
}

func (s *Service) RecomputeBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.repo.GetAccount(ctx, id); err != nil {
		return decimal.Zero, err
	}

	return s.repo.RecomputeBalance(ctx, id)
}
