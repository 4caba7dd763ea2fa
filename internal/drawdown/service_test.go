package drawdown_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/drawdown"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type fixture struct {
	entityID     uuid.UUID
	bank         *account.Account
	creditLine   *account.Account
	loanAccount  *account.Account
	counterparty *drawdown.Counterparty
	date         time.Time
}

func newFixture() fixture {
	entityID := uuid.New()

	return fixture{
		entityID:    entityID,
		bank:        &account.Account{ID: uuid.New(), EntityID: entityID, Type: account.TypeBank},
		creditLine:  &account.Account{ID: uuid.New(), EntityID: entityID, Type: account.TypeCreditLine},
		loanAccount: &account.Account{ID: uuid.New(), EntityID: entityID, Type: account.TypeLoanReceivable},
		counterparty: &drawdown.Counterparty{
			ID:       uuid.New(),
			EntityID: entityID,
			Name:     "Acme Factoring",
		},
		date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func expectMatchedPair(tx *drawdown.MockTx, created *[]*ledger.MainTransaction) {
	tx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *ledger.RawTransaction, main *ledger.MainTransaction) error {
			*created = append(*created, main)
			return nil
		}).
		Times(2)
	tx.EXPECT().
		SetMatched(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(2)
}

func TestService_Create(t *testing.T) {
	t.Run("LoanDisbursement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		amount := decimal.RequireFromString("1000000")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.loanAccount.ID).Return(f.loanAccount, nil)
		repo.EXPECT().GetCounterparty(gomock.Any(), f.counterparty.ID).Return(f.counterparty, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		tx.EXPECT().
			CreateDrawdown(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dd *drawdown.Drawdown) error {
				assert.Equal(t, drawdown.KindLoan, dd.Kind)
				assert.True(t, dd.Principal.Equal(amount))
				assert.True(t, dd.Remaining.Equal(amount))
				assert.Equal(t, drawdown.StatusActive, dd.Status)
				return nil
			})
		expectMatchedPair(tx, &created)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		result, err := svc.Create(context.Background(), drawdown.CreateParams{
			Kind:            drawdown.KindLoan,
			SourceAccountID: f.bank.ID,
			AccountID:       f.loanAccount.ID,
			CounterpartyID:  f.counterparty.ID,
			Amount:          amount,
			Date:            f.date,
		})

		require.NoError(t, err)
		require.Len(t, created, 2)

		assert.Equal(t, ledger.TypeLoanDisburse, result.SourceSide.Type)
		assert.Equal(t, ledger.Credit, result.SourceSide.Direction)
		assert.Equal(t, f.bank.ID, result.SourceSide.AccountID)

		assert.Equal(t, ledger.TypeLoanDisburse, result.SettleSide.Type)
		assert.Equal(t, ledger.Debit, result.SettleSide.Direction)
		assert.Equal(t, f.loanAccount.ID, result.SettleSide.AccountID)

		// The two sides point at each other.
		require.NotNil(t, result.SourceSide.MatchedID)
		require.NotNil(t, result.SettleSide.MatchedID)
		assert.Equal(t, result.SettleSide.ID, *result.SourceSide.MatchedID)
		assert.Equal(t, result.SourceSide.ID, *result.SettleSide.MatchedID)
	})

	t.Run("DebtDrawdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		amount := decimal.RequireFromString("5000.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.creditLine.ID).Return(f.creditLine, nil)
		repo.EXPECT().GetCounterparty(gomock.Any(), f.counterparty.ID).Return(f.counterparty, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		tx.EXPECT().CreateDrawdown(gomock.Any(), gomock.Any()).Return(nil)
		expectMatchedPair(tx, &created)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		result, err := svc.Create(context.Background(), drawdown.CreateParams{
			Kind:            drawdown.KindDebt,
			SourceAccountID: f.bank.ID,
			AccountID:       f.creditLine.ID,
			CounterpartyID:  f.counterparty.ID,
			Amount:          amount,
			Date:            f.date,
		})

		require.NoError(t, err)
		assert.Equal(t, ledger.TypeDebtTake, result.SourceSide.Type)
		assert.Equal(t, ledger.TypeDebtTake, result.SettleSide.Type)
	})

	t.Run("LoanNeedsReceivableAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.creditLine.ID).Return(f.creditLine, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.Create(context.Background(), drawdown.CreateParams{
			Kind:            drawdown.KindLoan,
			SourceAccountID: f.bank.ID,
			AccountID:       f.creditLine.ID,
			CounterpartyID:  f.counterparty.ID,
			Amount:          decimal.RequireFromString("100.00"),
			Date:            f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("SourceMustBeCashSide", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetAccount(gomock.Any(), f.creditLine.ID).Return(f.creditLine, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.loanAccount.ID).Return(f.loanAccount, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.Create(context.Background(), drawdown.CreateParams{
			Kind:            drawdown.KindLoan,
			SourceAccountID: f.creditLine.ID,
			AccountID:       f.loanAccount.ID,
			CounterpartyID:  f.counterparty.ID,
			Amount:          decimal.RequireFromString("100.00"),
			Date:            f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("CrossEntityRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.loanAccount.EntityID = uuid.New()

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.loanAccount.ID).Return(f.loanAccount, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.Create(context.Background(), drawdown.CreateParams{
			Kind:            drawdown.KindLoan,
			SourceAccountID: f.bank.ID,
			AccountID:       f.loanAccount.ID,
			CounterpartyID:  f.counterparty.ID,
			Amount:          decimal.RequireFromString("100.00"),
			Date:            f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_Repay(t *testing.T) {
	newDebt := func(remaining string) *drawdown.Drawdown {
		return &drawdown.Drawdown{
			ID:        uuid.New(),
			AccountID: uuid.New(),
			Kind:      drawdown.KindDebt,
			Principal: decimal.RequireFromString("1000.00"),
			Remaining: decimal.RequireFromString(remaining),
			Paid:      decimal.RequireFromString("1000.00").Sub(decimal.RequireFromString(remaining)),
			Status:    drawdown.StatusActive,
		}
	}

	t.Run("PartialPayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newDebt("1000.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		expectMatchedPair(tx, &created)
		tx.EXPECT().
			UpdateDrawdown(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *drawdown.Drawdown) error {
				assert.True(t, updated.Remaining.Equal(decimal.RequireFromString("600.00")))
				assert.True(t, updated.Paid.Equal(decimal.RequireFromString("400.00")))
				assert.Equal(t, drawdown.StatusActive, updated.Status)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		result, err := svc.Repay(context.Background(), dd.ID, drawdown.RepayParams{
			SourceAccountID: f.bank.ID,
			Amount:          decimal.RequireFromString("400.00"),
			Date:            f.date,
		})

		require.NoError(t, err)
		assert.Nil(t, result.CreditMemo)
		assert.Equal(t, ledger.TypeDebtPay, result.PaymentSide.Type)
		assert.Equal(t, ledger.Credit, result.PaymentSide.Direction)
		assert.Equal(t, ledger.Debit, result.SettleSide.Direction)
	})

	t.Run("FullPaymentSettles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newDebt("400.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		expectMatchedPair(tx, &created)
		tx.EXPECT().
			UpdateDrawdown(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *drawdown.Drawdown) error {
				assert.True(t, updated.Remaining.IsZero())
				assert.Equal(t, drawdown.StatusSettled, updated.Status)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		_, err := svc.Repay(context.Background(), dd.ID, drawdown.RepayParams{
			SourceAccountID: f.bank.ID,
			Amount:          decimal.RequireFromString("400.00"),
			Date:            f.date,
		})

		require.NoError(t, err)
	})

	t.Run("OverpaymentRecordsCreditMemo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newDebt("300.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		expectMatchedPair(tx, &created)

		// Third CreateTransaction is the credit memo.
		tx.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *ledger.RawTransaction, main *ledger.MainTransaction) error {
				assert.Equal(t, ledger.TypeIncome, main.Type)
				require.NotNil(t, main.CreditMemoOfID)
				assert.Equal(t, dd.ID, *main.CreditMemoOfID)
				assert.True(t, main.Amount.Equal(decimal.RequireFromString("100.00")))
				return nil
			})
		tx.EXPECT().
			UpdateDrawdown(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *drawdown.Drawdown) error {
				// Only the remaining principal is applied, never more.
				assert.True(t, updated.Remaining.IsZero())
				assert.True(t, updated.Paid.Equal(decimal.RequireFromString("1000.00")))
				assert.Equal(t, drawdown.StatusSettled, updated.Status)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		result, err := svc.Repay(context.Background(), dd.ID, drawdown.RepayParams{
			SourceAccountID: f.bank.ID,
			Amount:          decimal.RequireFromString("400.00"),
			Date:            f.date,
		})

		require.NoError(t, err)
		require.NotNil(t, result.CreditMemo)
		// The settlement carries the applied principal, the payment the full amount.
		assert.True(t, result.SettleSide.Amount.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, result.PaymentSide.Amount.Equal(decimal.RequireFromString("400.00")))
	})

	t.Run("LoanCollectionInvertsDirections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := &drawdown.Drawdown{
			ID:        uuid.New(),
			AccountID: f.loanAccount.ID,
			Kind:      drawdown.KindLoan,
			Principal: decimal.RequireFromString("1000.00"),
			Remaining: decimal.RequireFromString("1000.00"),
			Status:    drawdown.StatusActive,
		}

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		var created []*ledger.MainTransaction

		expectMatchedPair(tx, &created)
		tx.EXPECT().UpdateDrawdown(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		result, err := svc.Repay(context.Background(), dd.ID, drawdown.RepayParams{
			SourceAccountID: f.bank.ID,
			Amount:          decimal.RequireFromString("250.00"),
			Date:            f.date,
		})

		require.NoError(t, err)
		assert.Equal(t, ledger.TypeLoanCollect, result.PaymentSide.Type)
		assert.Equal(t, ledger.Debit, result.PaymentSide.Direction)
		assert.Equal(t, ledger.Credit, result.SettleSide.Direction)
	})

	t.Run("TerminalDrawdownRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newDebt("0")
		dd.Status = drawdown.StatusSettled

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.Repay(context.Background(), dd.ID, drawdown.RepayParams{
			SourceAccountID: f.bank.ID,
			Amount:          decimal.RequireFromString("10.00"),
			Date:            f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_WriteOff(t *testing.T) {
	newLoan := func(remaining string) *drawdown.Drawdown {
		return &drawdown.Drawdown{
			ID:         uuid.New(),
			AccountID:  uuid.New(),
			Kind:       drawdown.KindLoan,
			Principal:  decimal.RequireFromString("1000.00"),
			Remaining:  decimal.RequireFromString(remaining),
			WrittenOff: decimal.Zero,
			Status:     drawdown.StatusActive,
		}
	}

	t.Run("FullWriteOff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newLoan("1000.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, raw *ledger.RawTransaction, main *ledger.MainTransaction) error {
				assert.True(t, raw.IsBalanceAdjustment)
				assert.Equal(t, ledger.TypeLoanWriteOff, main.Type)
				return nil
			})
		tx.EXPECT().UpdateDrawdown(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		got, err := svc.WriteOff(context.Background(), dd.ID, drawdown.WriteOffParams{
			Amount: decimal.RequireFromString("1000.00"),
			Date:   f.date,
			Reason: "counterparty insolvent",
		})

		require.NoError(t, err)
		assert.Equal(t, drawdown.StatusWrittenOff, got.Status)
		assert.True(t, got.Remaining.IsZero())
		assert.True(t, got.WrittenOff.Equal(decimal.RequireFromString("1000.00")))
	})

	t.Run("PartialWriteOff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newLoan("1000.00")

		repo := drawdown.NewMockRepository(ctrl)
		tx := drawdown.NewMockTx(ctrl)

		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().UpdateDrawdown(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := drawdown.NewService(repo)
		got, err := svc.WriteOff(context.Background(), dd.ID, drawdown.WriteOffParams{
			Amount: decimal.RequireFromString("250.00"),
			Date:   f.date,
		})

		require.NoError(t, err)
		assert.Equal(t, drawdown.StatusPartiallyWrittenOff, got.Status)
		assert.True(t, got.Remaining.Equal(decimal.RequireFromString("750.00")))
	})

	t.Run("ExceedingRemainingRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newLoan("200.00")

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.WriteOff(context.Background(), dd.ID, drawdown.WriteOffParams{
			Amount: decimal.RequireFromString("200.01"),
			Date:   f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("AlreadyWrittenOffRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		dd := newLoan("0")
		dd.Status = drawdown.StatusWrittenOff

		repo := drawdown.NewMockRepository(ctrl)
		repo.EXPECT().GetDrawdown(gomock.Any(), dd.ID).Return(dd, nil)

		svc := drawdown.NewService(repo)
		_, err := svc.WriteOff(context.Background(), dd.ID, drawdown.WriteOffParams{
			Amount: decimal.RequireFromString("1.00"),
			Date:   f.date,
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
