// Package split converts one raw transaction into several categorized line
// items and collapses them back into one.
package split

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=split
type Repository interface {
	GetRawTransaction(ctx context.Context, id string) (*ledger.RawTransaction, error)
	ListMainTransactions(ctx context.Context, rawID string) ([]*ledger.MainTransaction, error)

	// ReplaceMainTransactions deletes the raw transaction's current main
	// transactions and inserts the replacements in one database
	// transaction, so concurrent readers never observe a raw transaction
	// with zero main transactions.
	ReplaceMainTransactions(ctx context.Context, rawID string, mains []*ledger.MainTransaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Item is one categorized line of a split.
type Item struct {
	CategoryID *uuid.UUID
	Type       ledger.TypeCode // empty means keep the direction default
	Amount     decimal.Decimal
	Notes      string
}

// Split replaces the raw transaction's main transactions with one per item.
// Item amounts must sum exactly to the raw transaction's amount; any
// mismatch, including a rounding one, is rejected.
func (s *Service) Split(ctx context.Context, rawID string, items []Item) ([]*ledger.MainTransaction, error) {
	if len(items) < 2 {
		return nil, ledger.Invalidf("split needs at least two line items, got %d", len(items))
	}

	raw, err := s.repo.GetRawTransaction(ctx, rawID)
	if err != nil {
		return nil, err
	}

	sum := decimal.Zero

	for i, item := range items {
		if !item.Amount.IsPositive() {
			return nil, ledger.Invalidf("line item %d: amount must be positive, got %s", i+1, item.Amount)
		}

		sum = sum.Add(item.Amount)
	}

	if !sum.Equal(raw.Amount()) {
		return nil, ledger.Invalidf("line items sum to %s, transaction amount is %s", sum, raw.Amount())
	}

	defaultType := ledger.TypeExpense
	if raw.Direction() == ledger.Credit {
		defaultType = ledger.TypeIncome
	}

	mains := make([]*ledger.MainTransaction, len(items))

	for i, item := range items {
		typ := item.Type
		if typ == "" {
			typ = defaultType
		}

		mains[i] = &ledger.MainTransaction{
			ID:               uuid.New(),
			RawTransactionID: raw.ID,
			AccountID:        raw.AccountID,
			Type:             typ,
			CategoryID:       item.CategoryID,
			Amount:           item.Amount,
			Direction:        raw.Direction(),
			IsSplit:          true,
			SplitSequence:    i + 1,
			Notes:            item.Notes,
			Date:             raw.Date,
			Description:      raw.Description,
		}
	}

	if err := s.repo.ReplaceMainTransactions(ctx, raw.ID, mains); err != nil {
		return nil, fmt.Errorf("replacing main transactions: %w", err)
	}

	return mains, nil
}

// Unsplit collapses a split raw transaction back to a single main
// transaction, keeping the first split's category and type as defaults.
func (s *Service) Unsplit(ctx context.Context, rawID string) (*ledger.MainTransaction, error) {
	raw, err := s.repo.GetRawTransaction(ctx, rawID)
	if err != nil {
		return nil, err
	}

	splits, err := s.repo.ListMainTransactions(ctx, raw.ID)
	if err != nil {
		return nil, fmt.Errorf("listing main transactions: %w", err)
	}

	if len(splits) == 0 {
		return nil, ledger.ErrNotFound
	}

	isSplit := false

	for _, m := range splits {
		if m.IsSplit {
			isSplit = true
			break
		}
	}

	if !isSplit {
		return nil, ledger.Invalidf("transaction %s is not split", rawID)
	}

	first := splits[0]

	main := &ledger.MainTransaction{
		ID:               uuid.New(),
		RawTransactionID: raw.ID,
		AccountID:        raw.AccountID,
		Type:             first.Type,
		CategoryID:       first.CategoryID,
		Amount:           raw.Amount(),
		Direction:        raw.Direction(),
		SplitSequence:    1,
		Date:             raw.Date,
		Description:      raw.Description,
	}

	if err := s.repo.ReplaceMainTransactions(ctx, raw.ID, []*ledger.MainTransaction{main}); err != nil {
		return nil, fmt.Errorf("replacing main transactions: %w", err)
	}

	return main, nil
}
