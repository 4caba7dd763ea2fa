package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts import rows using the matched profile. headerRowNum is
// the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]ledger.ImportRow, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	balanceIdx := -1
	if p.BalanceCol != "" {
		if idx, ok := cols[p.BalanceCol]; ok {
			balanceIdx = idx
		}
	}

	var out []ledger.ImportRow

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(p, row, dateIdx)
		if !ok {
			// Footer and summary rows carry no parseable date.
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		debit, credit, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		imported := ledger.ImportRow{
			Date:        date,
			Description: desc,
			Debit:       debit,
			Credit:      credit,
		}

		if balanceIdx >= 0 {
			if s := cellValue(row, balanceIdx); s != "" {
				if balance, err := parseStatementAmount(s); err == nil {
					imported.Balance = &balance
				}
			}
		}

		out = append(out, imported)
	}

	return out, nil
}

func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(p.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount extracts debit or credit from a row based on the profile's
// amount mode. Exactly one of the returned pointers is non-nil on success.
func parseAmount(p *Profile, cols colIndex, row []string) (debit, credit *decimal.Decimal, ok bool) {
	if p.AmountMode == amountSingle {
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return nil, nil, false
		}

		amount, err := parseStatementAmount(s)
		if err != nil || amount.IsZero() {
			return nil, nil, false
		}

		if amount.IsNegative() {
			neg := amount.Neg()
			return &neg, nil, true
		}

		return nil, &amount, true
	}

	if s := cellValue(row, cols[p.DebitCol]); s != "" {
		if amount, err := parseStatementAmount(s); err == nil && !amount.IsZero() {
			abs := amount.Abs()
			return &abs, nil, true
		}
	}

	if s := cellValue(row, cols[p.CreditCol]); s != "" {
		if amount, err := parseStatementAmount(s); err == nil && !amount.IsZero() {
			abs := amount.Abs()
			return nil, &abs, true
		}
	}

	return nil, nil, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
