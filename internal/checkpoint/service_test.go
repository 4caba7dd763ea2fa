package checkpoint_test

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
)

func TestService_Declare(t *testing.T) {
	accountID := uuid.New()
	date := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("ManualDeclaration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := checkpoint.NewMockRepository(ctrl)

		repo.EXPECT().
			UpsertCheckpoint(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cp *checkpoint.Checkpoint) error {
				assert.Equal(t, accountID, cp.AccountID)
				assert.Equal(t, date, cp.Date)
				assert.Equal(t, "48825.46", cp.DeclaredBalance.String())
				assert.Nil(t, cp.ImportBatchID)
				return nil
			})

		svc := checkpoint.NewService(repo)
		cp, err := svc.Declare(context.Background(), checkpoint.DeclareParams{
			AccountID:       accountID,
			Date:            date,
			DeclaredBalance: decimal.RequireFromString("48825.46"),
		})

		require.NoError(t, err)
		assert.Equal(t, "manual", cp.Source())
	})

	t.Run("ImportDeclarationCarriesBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := checkpoint.NewMockRepository(ctrl)
		batchID := uuid.New()

		repo.EXPECT().UpsertCheckpoint(gomock.Any(), gomock.Any()).Return(nil)

		svc := checkpoint.NewService(repo)
		cp, err := svc.Declare(context.Background(), checkpoint.DeclareParams{
			AccountID:       accountID,
			Date:            date,
			DeclaredBalance: decimal.NewFromInt(1000),
			ImportBatchID:   &batchID,
		})

		require.NoError(t, err)
		assert.Equal(t, "import", cp.Source())
	})

	t.Run("MissingDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := checkpoint.NewMockRepository(ctrl)

		svc := checkpoint.NewService(repo)
		_, err := svc.Declare(context.Background(), checkpoint.DeclareParams{
			AccountID:       accountID,
			DeclaredBalance: decimal.NewFromInt(1000),
		})

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_Delete(t *testing.T) {
	checkpointID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := checkpoint.NewMockRepository(ctrl)

		repo.EXPECT().GetCheckpoint(gomock.Any(), checkpointID).Return(&checkpoint.Checkpoint{ID: checkpointID}, nil)
		repo.EXPECT().DeleteCheckpoint(gomock.Any(), checkpointID).Return(nil)

		svc := checkpoint.NewService(repo)
		require.NoError(t, svc.Delete(context.Background(), checkpointID))
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := checkpoint.NewMockRepository(ctrl)

		repo.EXPECT().GetCheckpoint(gomock.Any(), checkpointID).Return(nil, ledger.ErrNotFound)

		svc := checkpoint.NewService(repo)
		assert.ErrorIs(t, svc.Delete(context.Background(), checkpointID), ledger.ErrNotFound)
	})
}
