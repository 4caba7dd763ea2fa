// Package reconcile explains gaps between the ledger's computed balances and
// balances declared as truth at checkpoints. It never mutates the ledger; a
// discrepancy is a report for a human, not an error.
package reconcile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Discrepancy is one date where a declared balance disagrees with the
// rolled-forward expected balance by more than the tolerance.
type Discrepancy struct {
	Date         time.Time
	Expected     decimal.Decimal
	Declared     decimal.Decimal
	Difference   decimal.Decimal // declared minus expected
	Credits      decimal.Decimal
	Debits       decimal.Decimal
	Transactions []*ledger.RawTransaction
	Source       string // set on the final checkpoint entry: "import" or "manual"
}

// Report is the result of investigating one checkpoint window.
type Report struct {
	AccountID       uuid.UUID
	CheckpointID    uuid.UUID
	WindowStart     *time.Time // previous checkpoint date, nil when none
	WindowEnd       time.Time
	OpeningBalance  decimal.Decimal
	ExpectedClosing decimal.Decimal
	DeclaredClosing decimal.Decimal
	Discrepancies   []Discrepancy
}

// day groups the transactions of a single date, in sequence order.
type day struct {
	date time.Time
	txs  []*ledger.RawTransaction
}

// walk rolls a balance forward through the transactions date by date,
// comparing against declared running balances where present. txs must be
// ordered by (date, sequence); the scan is stateful and strictly sequential
// because lastKnown carries forward.
func walk(opening decimal.Decimal, txs []*ledger.RawTransaction) (decimal.Decimal, []Discrepancy) {
	lastKnown := opening

	var discrepancies []Discrepancy

	for _, d := range groupByDate(txs) {
		credits, debits := dayTotals(d.txs)
		expected := lastKnown.Add(credits).Sub(debits)

		declared, ok := declaredBalance(d.txs)
		if !ok {
			// Without ground truth there is nothing to compare against;
			// carry the expectation forward unmodified.
			lastKnown = expected
			continue
		}

		if declared.Sub(expected).Abs().GreaterThan(ledger.Tolerance) {
			discrepancies = append(discrepancies, Discrepancy{
				Date:         d.date,
				Expected:     expected,
				Declared:     declared,
				Difference:   declared.Sub(expected),
				Credits:      credits,
				Debits:       debits,
				Transactions: d.txs,
			})
		}

		lastKnown = declared
	}

	return lastKnown, discrepancies
}

func groupByDate(txs []*ledger.RawTransaction) []day {
	var days []day

	for _, tx := range txs {
		date := tx.Date.Truncate(24 * time.Hour)

		if n := len(days); n > 0 && days[n-1].date.Equal(date) {
			days[n-1].txs = append(days[n-1].txs, tx)
			continue
		}

		days = append(days, day{date: date, txs: []*ledger.RawTransaction{tx}})
	}

	return days
}

// dayTotals sums a date's credits and debits. Balance adjustments are
// corrections, not real flow, and are excluded so they are not counted
// against themselves.
func dayTotals(txs []*ledger.RawTransaction) (credits, debits decimal.Decimal) {
	for _, tx := range txs {
		if tx.IsBalanceAdjustment {
			continue
		}

		if tx.Credit != nil {
			credits = credits.Add(*tx.Credit)
		}

		if tx.Debit != nil {
			debits = debits.Add(*tx.Debit)
		}
	}

	return credits, debits
}

// declaredBalance returns the last declared running balance of the date, in
// sequence order.
func declaredBalance(txs []*ledger.RawTransaction) (decimal.Decimal, bool) {
	var (
		value decimal.Decimal
		found bool
	)

	for _, tx := range txs {
		if tx.Balance != nil {
			value = *tx.Balance
			found = true
		}
	}

	return value, found
}
