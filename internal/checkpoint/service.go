package checkpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=checkpoint
type Repository interface {
	UpsertCheckpoint(ctx context.Context, cp *Checkpoint) error
	GetCheckpoint(ctx context.Context, id uuid.UUID) (*Checkpoint, error)
	ListCheckpoints(ctx context.Context, accountID uuid.UUID) ([]*Checkpoint, error)
	DeleteCheckpoint(ctx context.Context, id uuid.UUID) error
	SetCalculatedBalance(ctx context.Context, id uuid.UUID, calculated decimal.Decimal) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type DeclareParams struct {
	AccountID       uuid.UUID
	Date            time.Time
	DeclaredBalance decimal.Decimal
	ImportBatchID   *uuid.UUID
}

// Declare records an externally asserted balance for the account as of the
// date. One checkpoint per (account, date); declaring again overwrites.
func (s *Service) Declare(ctx context.Context, params DeclareParams) (*Checkpoint, error) {
	if params.Date.IsZero() {
		return nil, ledger.Invalidf("checkpoint date is required")
	}

	cp := &Checkpoint{
		ID:              uuid.New(),
		AccountID:       params.AccountID,
		Date:            params.Date,
		DeclaredBalance: params.DeclaredBalance,
		ImportBatchID:   params.ImportBatchID,
	}

	if err := s.repo.UpsertCheckpoint(ctx, cp); err != nil {
		return nil, fmt.Errorf("declaring checkpoint: %w", err)
	}

	return cp, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Checkpoint, error) {
	return s.repo.GetCheckpoint(ctx, id)
}

func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*Checkpoint, error) {
	return s.repo.ListCheckpoints(ctx, accountID)
}

// Delete removes a checkpoint. Deleting breaks the reconciliation history
// downstream of it, so this is an explicit admin action, never implicit.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetCheckpoint(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteCheckpoint(ctx, id)
}

// RecordCalculated stores the system-derived balance alongside the declared
// one for later audit.
func (s *Service) RecordCalculated(ctx context.Context, id uuid.UUID, calculated decimal.Decimal) error {
	if _, err := s.repo.GetCheckpoint(ctx, id); err != nil {
		return err
	}

	return s.repo.SetCalculatedBalance(ctx, id, calculated)
}
