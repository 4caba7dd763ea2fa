package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Summary describes one export run.
type Summary struct {
	Rows        int
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Service writes ledger extracts in the same column layout the statement
// importer accepts, so an exported file can be re-imported elsewhere.
type Service struct {
	ledger *ledger.Service
}

func NewService(ledgerSvc *ledger.Service) *Service {
	return &Service{ledger: ledgerSvc}
}

var header = []string{"Date", "Description", "Debit", "Credit", "Balance"}

// Export streams the raw transactions matching the filter as semicolon
// separated CSV. Soft-deleted transactions are already excluded by the list.
func (s *Service) Export(ctx context.Context, filter ledger.ListFilter, w io.Writer) (*Summary, error) {
	transactions, err := s.ledger.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	summary := &Summary{}

	for _, t := range transactions {
		record := []string{
			t.Date.Format(time.DateOnly),
			t.Description,
			"",
			"",
			"",
		}

		if t.Debit != nil {
			record[2] = t.Debit.StringFixed(2)
			summary.TotalDebit = summary.TotalDebit.Add(*t.Debit)
		}

		if t.Credit != nil {
			record[3] = t.Credit.StringFixed(2)
			summary.TotalCredit = summary.TotalCredit.Add(*t.Credit)
		}

		if t.Balance != nil {
			record[4] = t.Balance.StringFixed(2)
		}

		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}

		summary.Rows++
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return summary, nil
}

// Filename builds a safe attachment name from the filter's date range.
// Format: ledger_YYYYMMDD_YYYYMMDD.csv, with "all" standing in for an
// open-ended bound.
func (s *Service) Filename(filter ledger.ListFilter) string {
	from := "all"
	if filter.StartDate != nil {
		from = filter.StartDate.Format("20060102")
	}

	to := "all"
	if filter.EndDate != nil {
		to = filter.EndDate.Format("20060102")
	}

	return fmt.Sprintf("ledger_%s_%s.csv", from, to)
}

// Describe renders a human-readable recap of an export run, suitable for a
// notification message.
func (s *Service) Describe(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d transactions exported\n", summary.Rows))
	sb.WriteString(fmt.Sprintf("* total debits: %s\n", summary.TotalDebit.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("* total credits: %s\n", summary.TotalCredit.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("* net flow: %s\n", summary.TotalCredit.Sub(summary.TotalDebit).StringFixed(2)))

	return sb.String()
}
