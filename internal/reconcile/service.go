package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reconcile
type Repository interface {
	GetCheckpoint(ctx context.Context, id uuid.UUID) (*checkpoint.Checkpoint, error)
	LatestCheckpoint(ctx context.Context, accountID uuid.UUID) (*checkpoint.Checkpoint, error)

	// PreviousCheckpoint returns the newest checkpoint strictly before the
	// date, or nil when the account has none there.
	PreviousCheckpoint(ctx context.Context, accountID uuid.UUID, before time.Time) (*checkpoint.Checkpoint, error)

	// ListWindow returns the account's raw transactions with
	// after < date <= until, ordered by (date, sequence). A nil after
	// means from the beginning of the ledger.
	ListWindow(ctx context.Context, accountID uuid.UUID, after *time.Time, until time.Time) ([]*ledger.RawTransaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Investigate reconciles an account against a checkpoint. With a nil
// checkpoint id the account's latest checkpoint is the target. The result is
// a pure function of stored state; repeated calls return the same report.
func (s *Service) Investigate(ctx context.Context, accountID uuid.UUID, checkpointID *uuid.UUID) (*Report, error) {
	var (
		target *checkpoint.Checkpoint
		err    error
	)

	if checkpointID != nil {
		target, err = s.repo.GetCheckpoint(ctx, *checkpointID)
	} else {
		target, err = s.repo.LatestCheckpoint(ctx, accountID)
	}

	if err != nil {
		return nil, err
	}

	if target.AccountID != accountID {
		return nil, ledger.Invalidf("checkpoint %s belongs to another account", target.ID)
	}

	previous, err := s.repo.PreviousCheckpoint(ctx, accountID, target.Date)
	if err != nil {
		return nil, fmt.Errorf("finding previous checkpoint: %w", err)
	}

	opening := decimal.Zero

	var after *time.Time

	if previous != nil {
		opening = previous.DeclaredBalance
		after = &previous.Date
	}

	txs, err := s.repo.ListWindow(ctx, accountID, after, target.Date)
	if err != nil {
		return nil, fmt.Errorf("listing window transactions: %w", err)
	}

	expected, discrepancies := walk(opening, txs)

	if target.DeclaredBalance.Sub(expected).Abs().GreaterThan(ledger.Tolerance) {
		discrepancies = append(discrepancies, Discrepancy{
			Date:       target.Date,
			Expected:   expected,
			Declared:   target.DeclaredBalance,
			Difference: target.DeclaredBalance.Sub(expected),
			Source:     target.Source(),
		})
	}

	return &Report{
		AccountID:       accountID,
		CheckpointID:    target.ID,
		WindowStart:     after,
		WindowEnd:       target.Date,
		OpeningBalance:  opening,
		ExpectedClosing: expected,
		DeclaredClosing: target.DeclaredBalance,
		Discrepancies:   discrepancies,
	}, nil
}
