package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// CreateRawTransaction inserts the raw transaction together with its
	// default main transaction in one database transaction. A raw
	// transaction is never visible without at least one main transaction.
	CreateRawTransaction(ctx context.Context, raw *RawTransaction, main *MainTransaction) error
	GetRawTransaction(ctx context.Context, id string) (*RawTransaction, error)
	ListRawTransactions(ctx context.Context, filter ListFilter) ([]*RawTransaction, error)
	DeleteRawTransaction(ctx context.Context, id string) error

	GetMainTransaction(ctx context.Context, id uuid.UUID) (*MainTransaction, error)
	ListMainTransactions(ctx context.Context, rawID string) ([]*MainTransaction, error)

	BeginImport(ctx context.Context, accountID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, accountID uuid.UUID, rows []ImportRow) ([]*RawTransaction, error)
	CreateRawTransactions(ctx context.Context, accountID uuid.UUID, rows []ImportRow) ([]*RawTransaction, error)
	CreateCheckpoint(ctx context.Context, accountID uuid.UUID, date time.Time, declared decimal.Decimal, batchID uuid.UUID) (uuid.UUID, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	AccountID           uuid.UUID
	Date                time.Time
	Description         string
	Debit               *decimal.Decimal
	Credit              *decimal.Decimal
	Balance             *decimal.Decimal
	IsBalanceAdjustment bool
	Type                TypeCode
	CategoryID          *uuid.UUID
	Notes               string
}

type ListFilter struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Create records a raw transaction and its default main transaction. The
// main transaction is categorized by direction until the split or pairing
// engines assign a real type.
func (s *Service) Create(ctx context.Context, params CreateParams) (*RawTransaction, error) {
	if err := validateAmounts(params.Debit, params.Credit); err != nil {
		return nil, err
	}

	raw := &RawTransaction{
		ID:                  NewRawID(),
		AccountID:           params.AccountID,
		Date:                params.Date,
		Description:         params.Description,
		Debit:               params.Debit,
		Credit:              params.Credit,
		Balance:             params.Balance,
		IsBalanceAdjustment: params.IsBalanceAdjustment,
	}

	main := DefaultMain(raw)
	if params.Type != "" {
		main.Type = params.Type
	}

	main.CategoryID = params.CategoryID
	main.Notes = params.Notes

	if err := s.repo.CreateRawTransaction(ctx, raw, main); err != nil {
		return nil, fmt.Errorf("creating raw transaction: %w", err)
	}

	return raw, nil
}

func (s *Service) Get(ctx context.Context, id string) (*RawTransaction, error) {
	return s.repo.GetRawTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*RawTransaction, error) {
	return s.repo.ListRawTransactions(ctx, filter)
}

func (s *Service) GetMain(ctx context.Context, id uuid.UUID) (*MainTransaction, error) {
	return s.repo.GetMainTransaction(ctx, id)
}

func (s *Service) ListMains(ctx context.Context, rawID string) ([]*MainTransaction, error) {
	return s.repo.ListMainTransactions(ctx, rawID)
}

// Delete removes a raw transaction and its main transactions. Used by the
// explicit undo flow; pairing rollbacks go through their own transactions.
// Matched and drawdown-linked mains must be unwound first, otherwise the
// partner row would keep pointing at a deleted transaction.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetRawTransaction(ctx, id); err != nil {
		return err
	}

	mains, err := s.repo.ListMainTransactions(ctx, id)
	if err != nil {
		return fmt.Errorf("listing main transactions: %w", err)
	}

	for _, main := range mains {
		if main.MatchedID != nil {
			return Invalidf("transaction line %s is matched; unmatch it before deleting", main.ID)
		}

		if main.DrawdownID != nil || main.CreditMemoOfID != nil {
			return Invalidf("transaction line %s belongs to a drawdown; unwind it before deleting", main.ID)
		}
	}

	return s.repo.DeleteRawTransaction(ctx, id)
}

// DefaultMain builds the main transaction that accompanies every new raw
// transaction: full amount, sequence 1, typed by direction. Raw transactions
// follow the bank-statement convention: credits flow in, debits flow out.
func DefaultMain(raw *RawTransaction) *MainTransaction {
	typ := TypeExpense
	if raw.Direction() == Credit {
		typ = TypeIncome
	}

	return &MainTransaction{
		ID:               uuid.New(),
		RawTransactionID: raw.ID,
		AccountID:        raw.AccountID,
		Type:             typ,
		Amount:           raw.Amount(),
		Direction:        raw.Direction(),
		SplitSequence:    1,
		Date:             raw.Date,
		Description:      raw.Description,
	}
}

func validateAmounts(debit, credit *decimal.Decimal) error {
	if (debit == nil) == (credit == nil) {
		return Invalidf("exactly one of debit or credit must be set")
	}

	amount := debit
	if amount == nil {
		amount = credit
	}

	if !amount.IsPositive() {
		return Invalidf("amount must be positive, got %s", amount)
	}

	return nil
}

// ImportRow is one parsed bank-statement line.
type ImportRow struct {
	Date        time.Time
	Description string
	Debit       *decimal.Decimal
	Credit      *decimal.Decimal
	Balance     *decimal.Decimal
}

type ImportResult struct {
	Imported     []*RawTransaction
	Conflicts    []ImportConflict
	New          []ImportRow
	BatchID      uuid.UUID
	CheckpointID *uuid.UUID
}

type ImportConflict struct {
	Incoming ImportRow
	Existing *RawTransaction
}

// ImportStatement records the parsed statement rows for an account. Rows
// already present in the ledger (same date, amount, direction, description)
// are reported as conflicts and nothing is written. When the statement's last
// dated row declares a running balance, a checkpoint is created from it under
// the same import batch, inside the same database transaction.
func (s *Service) ImportStatement(ctx context.Context, accountID uuid.UUID, rows []ImportRow) (*ImportResult, error) {
	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	for _, row := range rows {
		if err := validateAmounts(row.Debit, row.Credit); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := dateRange(rows)

	itx, err := s.repo.BeginImport(ctx, accountID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, accountID, rows)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[importKey]*RawTransaction, len(duplicates))
	for _, d := range duplicates {
		lookup[rawImportKey(d)] = d
	}

	var (
		newRows   []ImportRow
		conflicts []ImportConflict
	)

	for _, row := range rows {
		if existing, found := lookup[rowImportKey(row)]; found {
			conflicts = append(conflicts, ImportConflict{Incoming: row, Existing: existing})
			continue
		}

		newRows = append(newRows, row)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newRows, Conflicts: conflicts}, nil
	}

	created, err := itx.CreateRawTransactions(ctx, accountID, newRows)
	if err != nil {
		return nil, fmt.Errorf("create raw transactions: %w", err)
	}

	result := &ImportResult{Imported: created, BatchID: uuid.New()}

	if date, declared, ok := closingBalance(newRows); ok {
		cpID, err := itx.CreateCheckpoint(ctx, accountID, date, declared, result.BatchID)
		if err != nil {
			return nil, fmt.Errorf("create checkpoint: %w", err)
		}

		result.CheckpointID = &cpID
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return result, nil
}

type importKey struct {
	Date        string
	Amount      string
	Direction   Direction
	Description string
}

func rowImportKey(row ImportRow) importKey {
	amount, dir := row.Debit, Debit
	if amount == nil {
		amount, dir = row.Credit, Credit
	}

	return importKey{
		Date:        row.Date.Format(time.DateOnly),
		Amount:      amount.String(),
		Direction:   dir,
		Description: row.Description,
	}
}

func rawImportKey(raw *RawTransaction) importKey {
	return importKey{
		Date:        raw.Date.Format(time.DateOnly),
		Amount:      raw.Amount().String(),
		Direction:   raw.Direction(),
		Description: raw.Description,
	}
}

// closingBalance returns the declared balance of the latest dated row that
// carries one.
func closingBalance(rows []ImportRow) (time.Time, decimal.Decimal, bool) {
	var (
		date  time.Time
		value decimal.Decimal
		found bool
	)

	for _, row := range rows {
		if row.Balance == nil {
			continue
		}

		if !found || row.Date.After(date) {
			date = row.Date
			value = *row.Balance
			found = true
		}
	}

	return date, value, found
}

func dateRange(rows []ImportRow) (time.Time, time.Time) {
	minDate := rows[0].Date
	maxDate := rows[0].Date

	for _, row := range rows[1:] {
		if row.Date.Before(minDate) {
			minDate = row.Date
		}

		if row.Date.After(maxDate) {
			maxDate = row.Date
		}
	}

	return minDate, maxDate
}
