package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func onDay(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestWalk(t *testing.T) {
	t.Run("CleanWindowNoDiscrepancies", func(t *testing.T) {
		txs := []*ledger.RawTransaction{
			{Date: onDay(5), Credit: amt("500.00")},
			{Date: onDay(5), Debit: amt("200.00"), Balance: amt("1300.00")},
		}

		closing, discrepancies := walk(decimal.RequireFromString("1000.00"), txs)

		assert.True(t, closing.Equal(decimal.RequireFromString("1300.00")))
		assert.Empty(t, discrepancies)
	})

	t.Run("DeclaredBalanceDisagrees", func(t *testing.T) {
		// Opening 1000, day 5 moves +500 -200, but the statement claims
		// 1400: a 100.00 gap on that date.
		txs := []*ledger.RawTransaction{
			{Date: onDay(5), Credit: amt("500.00")},
			{Date: onDay(5), Debit: amt("200.00"), Balance: amt("1400.00")},
		}

		closing, discrepancies := walk(decimal.RequireFromString("1000.00"), txs)

		require.Len(t, discrepancies, 1)
		d := discrepancies[0]
		assert.True(t, d.Expected.Equal(decimal.RequireFromString("1300.00")))
		assert.True(t, d.Declared.Equal(decimal.RequireFromString("1400.00")))
		assert.True(t, d.Difference.Equal(decimal.RequireFromString("100.00")))
		assert.Len(t, d.Transactions, 2)

		// The declared balance becomes the new baseline.
		assert.True(t, closing.Equal(decimal.RequireFromString("1400.00")))
	})

	t.Run("DeclaredBalanceResetsBaseline", func(t *testing.T) {
		// A gap on day 2 must not be reported again on day 4: the day 2
		// declared balance resets lastKnown.
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("100.00"), Balance: amt("250.00")},
			{Date: onDay(4), Debit: amt("50.00"), Balance: amt("200.00")},
		}

		closing, discrepancies := walk(decimal.Zero, txs)

		require.Len(t, discrepancies, 1)
		assert.Equal(t, onDay(2), discrepancies[0].Date)
		assert.True(t, closing.Equal(decimal.RequireFromString("200.00")))
	})

	t.Run("DaysWithoutDeclaredBalanceCarryForward", func(t *testing.T) {
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("100.00")},
			{Date: onDay(3), Debit: amt("40.00")},
			{Date: onDay(4), Credit: amt("10.00"), Balance: amt("70.00")},
		}

		closing, discrepancies := walk(decimal.Zero, txs)

		assert.Empty(t, discrepancies)
		assert.True(t, closing.Equal(decimal.RequireFromString("70.00")))
	})

	t.Run("BalanceAdjustmentsExcludedFromFlow", func(t *testing.T) {
		// The write-off adjustment corrects the account without moving
		// money; counting it would create a phantom discrepancy.
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("100.00"), IsBalanceAdjustment: true},
			{Date: onDay(2), Credit: amt("50.00"), Balance: amt("50.00")},
		}

		_, discrepancies := walk(decimal.Zero, txs)

		assert.Empty(t, discrepancies)
	})

	t.Run("WithinToleranceIgnored", func(t *testing.T) {
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("100.00"), Balance: amt("100.01")},
		}

		_, discrepancies := walk(decimal.Zero, txs)

		assert.Empty(t, discrepancies)
	})

	t.Run("LastDeclaredBalanceOfDayWins", func(t *testing.T) {
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("100.00"), Balance: amt("90.00"), Sequence: 1},
			{Date: onDay(2), Credit: amt("50.00"), Balance: amt("150.00"), Sequence: 2},
		}

		closing, discrepancies := walk(decimal.Zero, txs)

		assert.Empty(t, discrepancies)
		assert.True(t, closing.Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("Deterministic", func(t *testing.T) {
		txs := []*ledger.RawTransaction{
			{Date: onDay(2), Credit: amt("123.45"), Balance: amt("200.00")},
			{Date: onDay(3), Debit: amt("23.45")},
			{Date: onDay(7), Credit: amt("1.00"), Balance: amt("100.00")},
		}

		first, firstDiscrepancies := walk(decimal.Zero, txs)
		second, secondDiscrepancies := walk(decimal.Zero, txs)

		assert.True(t, first.Equal(second))
		assert.Equal(t, firstDiscrepancies, secondDiscrepancies)
	})
}
