package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/reconcile"
)

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestService_Investigate(t *testing.T) {
	accountID := uuid.New()
	jan := func(d int) time.Time {
		return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("FlagsGapAtTargetCheckpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		previous := &checkpoint.Checkpoint{
			ID:              uuid.New(),
			AccountID:       accountID,
			Date:            jan(1),
			DeclaredBalance: decimal.RequireFromString("1000.00"),
		}

		target := &checkpoint.Checkpoint{
			ID:              uuid.New(),
			AccountID:       accountID,
			Date:            jan(10),
			DeclaredBalance: decimal.RequireFromString("1400.00"),
		}

		txs := []*ledger.RawTransaction{
			{ID: ledger.NewRawID(), AccountID: accountID, Date: jan(5), Credit: amt("500.00")},
			{ID: ledger.NewRawID(), AccountID: accountID, Date: jan(5), Debit: amt("200.00")},
		}

		repo := reconcile.NewMockRepository(ctrl)
		repo.EXPECT().GetCheckpoint(gomock.Any(), target.ID).Return(target, nil)
		repo.EXPECT().PreviousCheckpoint(gomock.Any(), accountID, jan(10)).Return(previous, nil)
		repo.EXPECT().ListWindow(gomock.Any(), accountID, &previous.Date, jan(10)).Return(txs, nil)

		svc := reconcile.NewService(repo)
		report, err := svc.Investigate(context.Background(), accountID, &target.ID)

		require.NoError(t, err)
		assert.True(t, report.OpeningBalance.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, report.ExpectedClosing.Equal(decimal.RequireFromString("1300.00")))
		assert.True(t, report.DeclaredClosing.Equal(decimal.RequireFromString("1400.00")))

		require.Len(t, report.Discrepancies, 1)
		d := report.Discrepancies[0]
		assert.Equal(t, jan(10), d.Date)
		assert.True(t, d.Difference.Equal(decimal.RequireFromString("100.00")))
		assert.Equal(t, "manual", d.Source)
	})

	t.Run("DefaultsToLatestCheckpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		target := &checkpoint.Checkpoint{
			ID:              uuid.New(),
			AccountID:       accountID,
			Date:            jan(31),
			DeclaredBalance: decimal.RequireFromString("0.00"),
		}

		repo := reconcile.NewMockRepository(ctrl)
		repo.EXPECT().LatestCheckpoint(gomock.Any(), accountID).Return(target, nil)
		repo.EXPECT().PreviousCheckpoint(gomock.Any(), accountID, jan(31)).Return(nil, nil)
		repo.EXPECT().ListWindow(gomock.Any(), accountID, gomock.Nil(), jan(31)).Return(nil, nil)

		svc := reconcile.NewService(repo)
		report, err := svc.Investigate(context.Background(), accountID, nil)

		require.NoError(t, err)
		assert.True(t, report.OpeningBalance.IsZero())
		assert.Nil(t, report.WindowStart)
		assert.Empty(t, report.Discrepancies)
	})

	t.Run("NoCheckpointIsNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := reconcile.NewMockRepository(ctrl)
		repo.EXPECT().LatestCheckpoint(gomock.Any(), accountID).Return(nil, ledger.ErrNotFound)

		svc := reconcile.NewService(repo)
		_, err := svc.Investigate(context.Background(), accountID, nil)

		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("ForeignCheckpointRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		target := &checkpoint.Checkpoint{
			ID:              uuid.New(),
			AccountID:       uuid.New(),
			Date:            jan(10),
			DeclaredBalance: decimal.Zero,
		}

		repo := reconcile.NewMockRepository(ctrl)
		repo.EXPECT().GetCheckpoint(gomock.Any(), target.ID).Return(target, nil)

		svc := reconcile.NewService(repo)
		_, err := svc.Investigate(context.Background(), accountID, &target.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("ImportedCheckpointCarriesSource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		batchID := uuid.New()

		target := &checkpoint.Checkpoint{
			ID:              uuid.New(),
			AccountID:       accountID,
			Date:            jan(10),
			DeclaredBalance: decimal.RequireFromString("50.00"),
			ImportBatchID:   &batchID,
		}

		repo := reconcile.NewMockRepository(ctrl)
		repo.EXPECT().GetCheckpoint(gomock.Any(), target.ID).Return(target, nil)
		repo.EXPECT().PreviousCheckpoint(gomock.Any(), accountID, jan(10)).Return(nil, nil)
		repo.EXPECT().ListWindow(gomock.Any(), accountID, gomock.Nil(), jan(10)).Return(nil, nil)

		svc := reconcile.NewService(repo)
		report, err := svc.Investigate(context.Background(), accountID, &target.ID)

		require.NoError(t, err)
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "import", report.Discrepancies[0].Source)
	})
}
