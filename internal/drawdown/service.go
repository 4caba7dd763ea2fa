// Package drawdown manages debt and loan principal: disbursement and
// drawdown creation with their paired transactions, repayments, and
// write-offs.
package drawdown

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=drawdown
type Repository interface {
	GetDrawdown(ctx context.Context, id uuid.UUID) (*Drawdown, error)
	ListDrawdowns(ctx context.Context, accountID uuid.UUID) ([]*Drawdown, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetCounterparty(ctx context.Context, id uuid.UUID) (*Counterparty, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx spans the multi-table writes of one drawdown operation. Either every
// sub-write commits or none do.
type Tx interface {
	CreateDrawdown(ctx context.Context, dd *Drawdown) error
	UpdateDrawdown(ctx context.Context, dd *Drawdown) error
	CreateTransaction(ctx context.Context, raw *ledger.RawTransaction, main *ledger.MainTransaction) error
	SetMatched(ctx context.Context, id, partner uuid.UUID) (bool, error)
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
	Kind            Kind
	SourceAccountID uuid.UUID // bank or cash account the money leaves
	AccountID       uuid.UUID // debt or loan account carrying the principal
	CounterpartyID  uuid.UUID
	Amount          decimal.Decimal
	Date            time.Time
	Description     string
}

// CreateResult carries everything a drawdown creation produced: the drawdown
// itself and the matched pair of transactions on both accounts.
type CreateResult struct {
	Drawdown   *Drawdown
	SourceSide *ledger.MainTransaction
	SettleSide *ledger.MainTransaction
}

// Create records a debt drawdown or loan disbursement: the drawdown row, a
// credit on the source account, a debit on the debt/loan account, and the
// symmetric match between the two, as one database transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.Invalidf("amount must be positive, got %s", params.Amount)
	}

	source, err := s.repo.GetAccount(ctx, params.SourceAccountID)
	if err != nil {
		return nil, err
	}

	target, err := s.repo.GetAccount(ctx, params.AccountID)
	if err != nil {
		return nil, err
	}

	if !source.Type.IsCashSide() {
		return nil, ledger.Invalidf("source account must be bank or cash, got %q", source.Type)
	}

	switch params.Kind {
	case KindLoan:
		if target.Type != account.TypeLoanReceivable {
			return nil, ledger.Invalidf("loan disbursement requires a loan_receivable account, got %q", target.Type)
		}
	case KindDebt:
		if !target.Type.IsDebtSide() {
			return nil, ledger.Invalidf("debt drawdown requires a credit_line, term_loan or credit_card account, got %q", target.Type)
		}
	default:
		return nil, ledger.Invalidf("unknown drawdown kind %q", params.Kind)
	}

	if source.EntityID != target.EntityID {
		return nil, ledger.Invalidf("accounts belong to different entities")
	}

	counterparty, err := s.repo.GetCounterparty(ctx, params.CounterpartyID)
	if err != nil {
		return nil, err
	}

	dd := &Drawdown{
		ID:             uuid.New(),
		AccountID:      target.ID,
		Kind:           params.Kind,
		CounterpartyID: counterparty.ID,
		Principal:      params.Amount,
		Remaining:      params.Amount,
		Paid:           decimal.Zero,
		WrittenOff:     decimal.Zero,
		Status:         StatusActive,
		Date:           params.Date,
	}

	typ := ledger.TypeDebtTake
	if params.Kind == KindLoan {
		typ = ledger.TypeLoanDisburse
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("%s %s - %s", params.Kind, params.Amount, counterparty.Name)
	}

	give := newSide(source.ID, typ, params.Amount, ledger.Credit, params.Date, description, &dd.ID)
	settle := newSide(target.ID, typ, params.Amount, ledger.Debit, params.Date, description, &dd.ID)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning drawdown create: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateDrawdown(ctx, dd); err != nil {
		return nil, s.fail(tx, "create drawdown", err)
	}

	if err := s.createMatchedPair(ctx, tx, give, settle); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing drawdown create: %w", err)
	}

	return &CreateResult{Drawdown: dd, SourceSide: give.main, SettleSide: settle.main}, nil
}

type RepayParams struct {
	SourceAccountID uuid.UUID
	Amount          decimal.Decimal
	Date            time.Time
	Description     string
}

type RepayResult struct {
	Drawdown    *Drawdown
	PaymentSide *ledger.MainTransaction
	SettleSide  *ledger.MainTransaction
	CreditMemo  *ledger.MainTransaction // set when the payment exceeded the remaining principal
}

// Repay applies a payment against the drawdown's remaining principal.
// Payment beyond the remaining principal produces a credit memo on the
// drawdown's account, linked through credit_memo_of_drawdown_id so an
// unmatch can find it without guessing.
func (s *Service) Repay(ctx context.Context, id uuid.UUID, params RepayParams) (*RepayResult, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.Invalidf("amount must be positive, got %s", params.Amount)
	}

	dd, err := s.repo.GetDrawdown(ctx, id)
	if err != nil {
		return nil, err
	}

	if dd.Status.Terminal() {
		return nil, ledger.Invalidf("drawdown %s is %s and takes no further payments", dd.ID, dd.Status)
	}

	source, err := s.repo.GetAccount(ctx, params.SourceAccountID)
	if err != nil {
		return nil, err
	}

	if !source.Type.IsCashSide() {
		return nil, ledger.Invalidf("repayment source must be bank or cash, got %q", source.Type)
	}

	principal := params.Amount
	if principal.GreaterThan(dd.Remaining) {
		principal = dd.Remaining
	}

	overpaid := params.Amount.Sub(principal)

	typ := ledger.TypeDebtPay
	if dd.Kind == KindLoan {
		typ = ledger.TypeLoanCollect
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("repayment %s on %s", params.Amount, dd.ID)
	}

	// Loan collections flow into the cash account; debt repayments flow out.
	srcDir, settleDir := ledger.Credit, ledger.Debit
	if dd.Kind == KindLoan {
		srcDir, settleDir = ledger.Debit, ledger.Credit
	}

	payment := newSide(source.ID, typ, params.Amount, srcDir, params.Date, description, &dd.ID)
	settle := newSide(dd.AccountID, typ, principal, settleDir, params.Date, description, &dd.ID)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning repayment: %w", err)
	}
	defer tx.Rollback()

	if err := s.createMatchedPair(ctx, tx, payment, settle); err != nil {
		return nil, err
	}

	result := &RepayResult{PaymentSide: payment.main, SettleSide: settle.main}

	if overpaid.IsPositive() {
		memo := newSide(dd.AccountID, ledger.TypeIncome, overpaid, settleDir, params.Date,
			fmt.Sprintf("credit memo: overpayment on %s", dd.ID), nil)
		memo.main.CreditMemoOfID = &dd.ID

		if err := tx.CreateTransaction(ctx, memo.raw, memo.main); err != nil {
			return nil, s.fail(tx, "create credit memo", err)
		}

		result.CreditMemo = memo.main
	}

	dd.Remaining = dd.Remaining.Sub(principal)
	dd.Paid = dd.Paid.Add(principal)

	if dd.Remaining.IsZero() {
		dd.Status = StatusSettled
	}

	if err := tx.UpdateDrawdown(ctx, dd); err != nil {
		return nil, s.fail(tx, "update drawdown", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing repayment: %w", err)
	}

	result.Drawdown = dd

	return result, nil
}

type WriteOffParams struct {
	Amount decimal.Decimal
	Date   time.Time
	Reason string
}

// WriteOff cancels part or all of the remaining principal without a cash
// movement. The amount must not exceed the remaining balance; it is a hard
// precondition, never clamped.
func (s *Service) WriteOff(ctx context.Context, id uuid.UUID, params WriteOffParams) (*Drawdown, error) {
	if !params.Amount.IsPositive() {
		return nil, ledger.Invalidf("amount must be positive, got %s", params.Amount)
	}

	dd, err := s.repo.GetDrawdown(ctx, id)
	if err != nil {
		return nil, err
	}

	if dd.Status == StatusWrittenOff {
		return nil, ledger.Invalidf("drawdown %s is already fully written off", dd.ID)
	}

	if params.Amount.GreaterThan(dd.Remaining) {
		return nil, ledger.Invalidf("write-off %s exceeds remaining balance %s", params.Amount, dd.Remaining)
	}

	dd.Remaining = dd.Remaining.Sub(params.Amount)
	dd.WrittenOff = dd.WrittenOff.Add(params.Amount)

	switch {
	case dd.Remaining.IsZero():
		dd.Status = StatusWrittenOff
	case dd.WrittenOff.IsPositive():
		dd.Status = StatusPartiallyWrittenOff
	}

	description := fmt.Sprintf("write-off %s", params.Amount)
	if params.Reason != "" {
		description += ": " + params.Reason
	}

	adjustment := newSide(dd.AccountID, ledger.TypeLoanWriteOff, params.Amount, ledger.Credit,
		params.Date, description, &dd.ID)
	adjustment.raw.IsBalanceAdjustment = true

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning write-off: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateTransaction(ctx, adjustment.raw, adjustment.main); err != nil {
		return nil, s.fail(tx, "create adjustment", err)
	}

	if err := tx.UpdateDrawdown(ctx, dd); err != nil {
		return nil, s.fail(tx, "update drawdown", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing write-off: %w", err)
	}

	return dd, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Drawdown, error) {
	return s.repo.GetDrawdown(ctx, id)
}

func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*Drawdown, error) {
	return s.repo.ListDrawdowns(ctx, accountID)
}

// side bundles the raw transaction and its main transaction for one account
// of a pairing.
type side struct {
	raw  *ledger.RawTransaction
	main *ledger.MainTransaction
}

func newSide(accountID uuid.UUID, typ ledger.TypeCode, amount decimal.Decimal, dir ledger.Direction,
	date time.Time, description string, drawdownID *uuid.UUID,
) side {
	raw := &ledger.RawTransaction{
		ID:          ledger.NewRawID(),
		AccountID:   accountID,
		Date:        date,
		Description: description,
	}

	if dir == ledger.Debit {
		raw.Debit = &amount
	} else {
		raw.Credit = &amount
	}

	main := ledger.DefaultMain(raw)
	main.Type = typ
	main.DrawdownID = drawdownID

	return side{raw: raw, main: main}
}

func (s *Service) createMatchedPair(ctx context.Context, tx Tx, a, b side) error {
	if err := tx.CreateTransaction(ctx, a.raw, a.main); err != nil {
		return s.fail(tx, "create source transaction", err)
	}

	if err := tx.CreateTransaction(ctx, b.raw, b.main); err != nil {
		return s.fail(tx, "create settle transaction", err)
	}

	for _, link := range [][2]*ledger.MainTransaction{{a.main, b.main}, {b.main, a.main}} {
		updated, err := tx.SetMatched(ctx, link[0].ID, link[1].ID)
		if err != nil {
			return s.fail(tx, "match pair", err)
		}

		if !updated {
			return s.fail(tx, "match pair", ledger.Conflictf("transaction %s is already matched", link[0].ID))
		}

		link[0].MatchedID = &link[1].ID
	}

	return nil
}

// fail rolls back and escalates rollback failure to an integrity error with
// a loud log, since the store may be left inconsistent.
func (s *Service) fail(tx Tx, step string, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		slog.Error("drawdown rollback failed",
			"step", step, "error", rbErr, "manual_cleanup_needed", true)

		return &ledger.IntegrityError{Op: step, Err: rbErr}
	}

	return fmt.Errorf("%s: %w", step, err)
}
