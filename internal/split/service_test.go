package split_test

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

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/split"
)

func rawDebit(amount string) *ledger.RawTransaction {
	d := decimal.RequireFromString(amount)

	return &ledger.RawTransaction{
		ID:          ledger.NewRawID(),
		AccountID:   uuid.New(),
		Date:        time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Description: "supermarket",
		Debit:       &d,
	}
}

func TestService_Split(t *testing.T) {
	type testCase struct {
		name      string
		items     []split.Item
		setupMock func(m *split.MockRepository, raw *ledger.RawTransaction)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			items: []split.Item{
				{Amount: decimal.RequireFromString("70.00"), Type: ledger.TypeExpense},
				{Amount: decimal.RequireFromString("30.00")},
			},
			setupMock: func(m *split.MockRepository, raw *ledger.RawTransaction) {
				m.EXPECT().
					GetRawTransaction(gomock.Any(), raw.ID).
					Return(raw, nil)
				m.EXPECT().
					ReplaceMainTransactions(gomock.Any(), raw.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, mains []*ledger.MainTransaction) error {
						require.Len(t, mains, 2)
						assert.Equal(t, 1, mains[0].SplitSequence)
						assert.Equal(t, 2, mains[1].SplitSequence)
						assert.True(t, mains[0].IsSplit)
						assert.True(t, mains[1].IsSplit)
						assert.Equal(t, ledger.TypeExpense, mains[1].Type)
						return nil
					})
			},
		},
		{
			name: "SumMismatchRejected",
			items: []split.Item{
				{Amount: decimal.RequireFromString("70.00")},
				{Amount: decimal.RequireFromString("29.99")},
			},
			setupMock: func(m *split.MockRepository, raw *ledger.RawTransaction) {
				m.EXPECT().
					GetRawTransaction(gomock.Any(), raw.ID).
					Return(raw, nil)
			},
			wantErr: true,
		},
		{
			name: "SingleItemRejected",
			items: []split.Item{
				{Amount: decimal.RequireFromString("100.00")},
			},
			wantErr: true,
		},
		{
			name: "NonPositiveItemRejected",
			items: []split.Item{
				{Amount: decimal.RequireFromString("100.00")},
				{Amount: decimal.Zero},
			},
			setupMock: func(m *split.MockRepository, raw *ledger.RawTransaction) {
				m.EXPECT().
					GetRawTransaction(gomock.Any(), raw.ID).
					Return(raw, nil)
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			items: []split.Item{
				{Amount: decimal.RequireFromString("70.00")},
				{Amount: decimal.RequireFromString("30.00")},
			},
			setupMock: func(m *split.MockRepository, raw *ledger.RawTransaction) {
				m.EXPECT().
					GetRawTransaction(gomock.Any(), raw.ID).
					Return(raw, nil)
				m.EXPECT().
					ReplaceMainTransactions(gomock.Any(), raw.ID, gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			raw := rawDebit("100.00")

			repo := split.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, raw)
			}

			svc := split.NewService(repo)
			mains, err := svc.Split(context.Background(), raw.ID, tt.items)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, mains)

				return
			}

			require.NoError(t, err)
			require.Len(t, mains, len(tt.items))

			sum := decimal.Zero
			for _, m := range mains {
				assert.Equal(t, raw.Direction(), m.Direction)
				sum = sum.Add(m.Amount)
			}
			assert.True(t, sum.Equal(raw.Amount()))
		})
	}
}

func TestService_Unsplit(t *testing.T) {
	t.Run("CollapsesToSingleLine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		raw := rawDebit("100.00")
		catID := uuid.New()

		splits := []*ledger.MainTransaction{
			{ID: uuid.New(), RawTransactionID: raw.ID, Type: ledger.TypeExpense, CategoryID: &catID, IsSplit: true, SplitSequence: 1},
			{ID: uuid.New(), RawTransactionID: raw.ID, Type: ledger.TypeIncome, IsSplit: true, SplitSequence: 2},
		}

		repo := split.NewMockRepository(ctrl)
		repo.EXPECT().
			GetRawTransaction(gomock.Any(), raw.ID).
			Return(raw, nil)
		repo.EXPECT().
			ListMainTransactions(gomock.Any(), raw.ID).
			Return(splits, nil)
		repo.EXPECT().
			ReplaceMainTransactions(gomock.Any(), raw.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, mains []*ledger.MainTransaction) error {
				require.Len(t, mains, 1)
				return nil
			})

		svc := split.NewService(repo)
		main, err := svc.Unsplit(context.Background(), raw.ID)

		require.NoError(t, err)
		assert.Equal(t, ledger.TypeExpense, main.Type)
		assert.Equal(t, &catID, main.CategoryID)
		assert.True(t, main.Amount.Equal(raw.Amount()))
		assert.False(t, main.IsSplit)
		assert.Equal(t, 1, main.SplitSequence)
	})

	t.Run("NotSplitRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		raw := rawDebit("100.00")

		repo := split.NewMockRepository(ctrl)
		repo.EXPECT().
			GetRawTransaction(gomock.Any(), raw.ID).
			Return(raw, nil)
		repo.EXPECT().
			ListMainTransactions(gomock.Any(), raw.ID).
			Return([]*ledger.MainTransaction{
				{ID: uuid.New(), RawTransactionID: raw.ID, SplitSequence: 1},
			}, nil)

		svc := split.NewService(repo)
		_, err := svc.Unsplit(context.Background(), raw.ID)

		var validationErr *ledger.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("NoMainsIsNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		raw := rawDebit("100.00")

		repo := split.NewMockRepository(ctrl)
		repo.EXPECT().
			GetRawTransaction(gomock.Any(), raw.ID).
			Return(raw, nil)
		repo.EXPECT().
			ListMainTransactions(gomock.Any(), raw.ID).
			Return(nil, nil)

		svc := split.NewService(repo)
		_, err := svc.Unsplit(context.Background(), raw.ID)

		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})
}
