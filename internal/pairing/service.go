// Package pairing links two main transactions on different accounts as the
// two sides of one real-world money movement, and tears such links down.
package pairing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// pairPartner maps each pairable transaction type to the type required on
// the other side. Any combination not listed here is rejected.
var pairPartner = map[ledger.TypeCode]ledger.TypeCode{
	ledger.TypeTransferOut:  ledger.TypeTransferIn,
	ledger.TypeTransferIn:   ledger.TypeTransferOut,
	ledger.TypeCardPayment:  ledger.TypeCardPayment,
	ledger.TypeDebtTake:     ledger.TypeDebtTake,
	ledger.TypeDebtPay:      ledger.TypeDebtPay,
	ledger.TypeLoanDisburse: ledger.TypeLoanDisburse,
	ledger.TypeLoanCollect:  ledger.TypeLoanCollect,
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pairing
type Repository interface {
	GetMainTransaction(ctx context.Context, id uuid.UUID) (*ledger.MainTransaction, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a database transaction scoped to one match or unmatch operation.
type Tx interface {
	// SetMatched links id to partner only if id is currently unmatched and
	// reports whether the row was updated. The conditional update is the
	// guard against two concurrent match requests racing on one row.
	SetMatched(ctx context.Context, id, partner uuid.UUID) (bool, error)
	ClearMatched(ctx context.Context, id uuid.UUID) error
	ClearDrawdownRef(ctx context.Context, id uuid.UUID) error

	// DeleteTransaction removes the main transaction and its underlying
	// raw transaction.
	DeleteTransaction(ctx context.Context, mainID uuid.UUID) error
	ListCreditMemos(ctx context.Context, drawdownID uuid.UUID) ([]*ledger.MainTransaction, error)
	RestoreDrawdownPrincipal(ctx context.Context, drawdownID uuid.UUID, amount decimal.Decimal) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Pair is a linked two-sided transaction.
type Pair struct {
	Out *ledger.MainTransaction
	In  *ledger.MainTransaction
}

// Match links two main transactions as the two sides of one movement. Both
// rows are updated in one database transaction with unmatched-only
// conditional updates, so a lost race fails with ConflictError and an
// asymmetric link is never persisted.
func (s *Service) Match(ctx context.Context, outID, inID uuid.UUID) (*Pair, error) {
	if outID == inID {
		return nil, ledger.Invalidf("cannot match a transaction to itself")
	}

	out, err := s.repo.GetMainTransaction(ctx, outID)
	if err != nil {
		return nil, err
	}

	in, err := s.repo.GetMainTransaction(ctx, inID)
	if err != nil {
		return nil, err
	}

	if err := s.validatePair(ctx, out, in); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning match: %w", err)
	}
	defer tx.Rollback()

	for _, link := range [][2]uuid.UUID{{out.ID, in.ID}, {in.ID, out.ID}} {
		updated, err := tx.SetMatched(ctx, link[0], link[1])
		if err != nil {
			return nil, s.fail(tx, "match", err)
		}

		if !updated {
			return nil, ledger.Conflictf("transaction %s is already matched", link[0])
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing match: %w", err)
	}

	out.MatchedID = &in.ID
	in.MatchedID = &out.ID

	return &Pair{Out: out, In: in}, nil
}

func (s *Service) validatePair(ctx context.Context, out, in *ledger.MainTransaction) error {
	want, ok := pairPartner[out.Type]
	if !ok || want != in.Type {
		return ledger.Invalidf("transaction types %s and %s do not form a valid pair", out.Type, in.Type)
	}

	if out.AccountID == in.AccountID {
		return ledger.Invalidf("both transactions belong to account %s", out.AccountID)
	}

	if out.MatchedID != nil {
		return ledger.Conflictf("transaction %s is already matched", out.ID)
	}

	if in.MatchedID != nil {
		return ledger.Conflictf("transaction %s is already matched", in.ID)
	}

	if out.Amount.Sub(in.Amount).Abs().GreaterThan(ledger.Tolerance) {
		return ledger.Invalidf("amounts differ: %s vs %s", out.Amount, in.Amount)
	}

	outAcc, err := s.repo.GetAccount(ctx, out.AccountID)
	if err != nil {
		return err
	}

	inAcc, err := s.repo.GetAccount(ctx, in.AccountID)
	if err != nil {
		return err
	}

	if outAcc.EntityID != inAcc.EntityID {
		return ledger.Invalidf("accounts belong to different entities")
	}

	return nil
}

// Unmatch removes the symmetric link between a transaction and its partner.
// For a debt repayment carrying a drawdown reference it also deletes the
// settlement-side transaction, deletes any credit memos recorded for the
// overpayment, restores the repaid principal to the drawdown and clears the
// drawdown reference, all inside the same database transaction.
func (s *Service) Unmatch(ctx context.Context, id uuid.UUID) error {
	main, err := s.repo.GetMainTransaction(ctx, id)
	if err != nil {
		return err
	}

	if main.MatchedID == nil {
		return ledger.Invalidf("transaction %s is not matched", id)
	}

	partner, err := s.repo.GetMainTransaction(ctx, *main.MatchedID)
	if err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning unmatch: %w", err)
	}
	defer tx.Rollback()

	if main.Type == ledger.TypeDebtPay && drawdownRef(main, partner) != nil {
		err = s.unwindRepayment(ctx, tx, main, partner)
	} else {
		err = s.clearBoth(ctx, tx, main.ID, partner.ID)
	}

	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unmatch: %w", err)
	}

	return nil
}

func (s *Service) clearBoth(ctx context.Context, tx Tx, a, b uuid.UUID) error {
	if err := tx.ClearMatched(ctx, a); err != nil {
		return s.fail(tx, "unmatch", err)
	}

	if err := tx.ClearMatched(ctx, b); err != nil {
		return s.fail(tx, "unmatch", err)
	}

	return nil
}

// unwindRepayment reverses a debt repayment pairing. The settlement side is
// the transaction recorded on the drawdown's own account; the payment side
// on the cash account survives, unmatched and unlinked.
func (s *Service) unwindRepayment(ctx context.Context, tx Tx, main, partner *ledger.MainTransaction) error {
	ddID := *drawdownRef(main, partner)

	// Repayments are recorded as a credit on the cash account and a debit
	// on the drawdown's account, so the debit side is the settlement.
	settlement, payment := main, partner
	if main.Direction != ledger.Debit {
		settlement, payment = partner, main
	}

	if err := tx.ClearMatched(ctx, payment.ID); err != nil {
		return s.fail(tx, "unmatch repayment", err)
	}

	if err := tx.DeleteTransaction(ctx, settlement.ID); err != nil {
		return s.fail(tx, "delete settlement", err)
	}

	memos, err := tx.ListCreditMemos(ctx, ddID)
	if err != nil {
		return s.fail(tx, "list credit memos", err)
	}

	for _, memo := range memos {
		if err := tx.DeleteTransaction(ctx, memo.ID); err != nil {
			return s.fail(tx, "delete credit memo", err)
		}
	}

	if err := tx.RestoreDrawdownPrincipal(ctx, ddID, settlement.Amount); err != nil {
		return s.fail(tx, "restore principal", err)
	}

	if err := tx.ClearDrawdownRef(ctx, payment.ID); err != nil {
		return s.fail(tx, "clear drawdown ref", err)
	}

	return nil
}

// fail rolls the transaction back and reports a rollback failure as an
// integrity error. A failed rollback may leave the store inconsistent, so it
// is logged loudly instead of being folded into the original error.
func (s *Service) fail(tx Tx, step string, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		slog.Error("pairing rollback failed",
			"step", step, "error", rbErr, "manual_cleanup_needed", true)

		return &ledger.IntegrityError{Op: step, Err: rbErr}
	}

	return fmt.Errorf("%s: %w", step, err)
}

func drawdownRef(a, b *ledger.MainTransaction) *uuid.UUID {
	if a.DrawdownID != nil {
		return a.DrawdownID
	}

	return b.DrawdownID
}
