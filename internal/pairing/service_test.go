package pairing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/pairing"
)

type fixture struct {
	entityID   uuid.UUID
	bank       *account.Account
	savings    *account.Account
	out        *ledger.MainTransaction
	in         *ledger.MainTransaction
}

func newFixture() fixture {
	entityID := uuid.New()

	bank := &account.Account{ID: uuid.New(), EntityID: entityID, Type: account.TypeBank}
	savings := &account.Account{ID: uuid.New(), EntityID: entityID, Type: account.TypeBank}

	amount := decimal.RequireFromString("250.00")
	date := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)

	out := &ledger.MainTransaction{
		ID:        uuid.New(),
		AccountID: bank.ID,
		Type:      ledger.TypeTransferOut,
		Amount:    amount,
		Direction: ledger.Debit,
		Date:      date,
	}

	in := &ledger.MainTransaction{
		ID:        uuid.New(),
		AccountID: savings.ID,
		Type:      ledger.TypeTransferIn,
		Amount:    amount,
		Direction: ledger.Credit,
		Date:      date,
	}

	return fixture{entityID: entityID, bank: bank, savings: savings, out: out, in: in}
}

func TestService_Match(t *testing.T) {
	t.Run("LinksBothSides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.savings.ID).Return(f.savings, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().SetMatched(gomock.Any(), f.out.ID, f.in.ID).Return(true, nil)
		tx.EXPECT().SetMatched(gomock.Any(), f.in.ID, f.out.ID).Return(true, nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := pairing.NewService(repo)
		pair, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		require.NoError(t, err)
		require.NotNil(t, pair.Out.MatchedID)
		require.NotNil(t, pair.In.MatchedID)
		assert.Equal(t, f.in.ID, *pair.Out.MatchedID)
		assert.Equal(t, f.out.ID, *pair.In.MatchedID)
	})

	t.Run("LostRaceIsConflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.savings.ID).Return(f.savings, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		// Another request matched the out side between validation and the
		// conditional update.
		tx.EXPECT().SetMatched(gomock.Any(), f.out.ID, f.in.ID).Return(false, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		var conflictErr *ledger.ConflictError
		require.ErrorAs(t, err, &conflictErr)
	})

	t.Run("SelfMatchRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := pairing.NewMockRepository(ctrl)
		svc := pairing.NewService(repo)

		id := uuid.New()
		_, err := svc.Match(context.Background(), id, id)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("InvalidTypePairRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.in.Type = ledger.TypeExpense

		repo := pairing.NewMockRepository(ctrl)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("AlreadyMatchedRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		other := uuid.New()
		f.out.MatchedID = &other

		repo := pairing.NewMockRepository(ctrl)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		var conflictErr *ledger.ConflictError
		require.ErrorAs(t, err, &conflictErr)
	})

	t.Run("AmountMismatchRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.in.Amount = decimal.RequireFromString("250.02")

		repo := pairing.NewMockRepository(ctrl)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("WithinToleranceAccepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.in.Amount = decimal.RequireFromString("250.01")

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.savings.ID).Return(f.savings, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().SetMatched(gomock.Any(), f.out.ID, f.in.ID).Return(true, nil)
		tx.EXPECT().SetMatched(gomock.Any(), f.in.ID, f.out.ID).Return(true, nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		assert.NoError(t, err)
	})

	t.Run("CrossEntityRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.savings.EntityID = uuid.New()

		repo := pairing.NewMockRepository(ctrl)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.bank.ID).Return(f.bank, nil)
		repo.EXPECT().GetAccount(gomock.Any(), f.savings.ID).Return(f.savings, nil)

		svc := pairing.NewService(repo)
		_, err := svc.Match(context.Background(), f.out.ID, f.in.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_Unmatch(t *testing.T) {
	t.Run("ClearsBothSides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.out.MatchedID = &f.in.ID
		f.in.MatchedID = &f.out.ID

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().ClearMatched(gomock.Any(), f.out.ID).Return(nil)
		tx.EXPECT().ClearMatched(gomock.Any(), f.in.ID).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := pairing.NewService(repo)
		err := svc.Unmatch(context.Background(), f.out.ID)

		assert.NoError(t, err)
	})

	t.Run("NotMatchedRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()

		repo := pairing.NewMockRepository(ctrl)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)

		svc := pairing.NewService(repo)
		err := svc.Unmatch(context.Background(), f.out.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("DebtRepaymentUnwindsSettlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ddID := uuid.New()
		amount := decimal.RequireFromString("400.00")

		payment := &ledger.MainTransaction{
			ID:         uuid.New(),
			AccountID:  uuid.New(),
			Type:       ledger.TypeDebtPay,
			Amount:     amount,
			Direction:  ledger.Credit,
			DrawdownID: &ddID,
		}

		settlement := &ledger.MainTransaction{
			ID:         uuid.New(),
			AccountID:  uuid.New(),
			Type:       ledger.TypeDebtPay,
			Amount:     amount,
			Direction:  ledger.Debit,
			DrawdownID: &ddID,
		}

		payment.MatchedID = &settlement.ID
		settlement.MatchedID = &payment.ID

		memo := &ledger.MainTransaction{ID: uuid.New(), CreditMemoOfID: &ddID}

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), payment.ID).Return(payment, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), settlement.ID).Return(settlement, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().ClearMatched(gomock.Any(), payment.ID).Return(nil)
		tx.EXPECT().DeleteTransaction(gomock.Any(), settlement.ID).Return(nil)
		tx.EXPECT().ListCreditMemos(gomock.Any(), ddID).Return([]*ledger.MainTransaction{memo}, nil)
		tx.EXPECT().DeleteTransaction(gomock.Any(), memo.ID).Return(nil)
		tx.EXPECT().RestoreDrawdownPrincipal(gomock.Any(), ddID, settlement.Amount).Return(nil)
		tx.EXPECT().ClearDrawdownRef(gomock.Any(), payment.ID).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := pairing.NewService(repo)
		err := svc.Unmatch(context.Background(), payment.ID)

		assert.NoError(t, err)
	})

	t.Run("RollbackFailureIsIntegrityError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture()
		f.out.MatchedID = &f.in.ID
		f.in.MatchedID = &f.out.ID

		repo := pairing.NewMockRepository(ctrl)
		tx := pairing.NewMockTx(ctrl)

		repo.EXPECT().GetMainTransaction(gomock.Any(), f.out.ID).Return(f.out, nil)
		repo.EXPECT().GetMainTransaction(gomock.Any(), f.in.ID).Return(f.in, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().ClearMatched(gomock.Any(), f.out.ID).Return(errors.New("connection lost"))
		tx.EXPECT().Rollback().Return(errors.New("rollback failed")).Times(2)

		svc := pairing.NewService(repo)
		err := svc.Unmatch(context.Background(), f.out.ID)

		var integrityErr *ledger.IntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})
}
