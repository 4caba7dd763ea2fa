// Package statement reads bank statement CSV exports and produces ledger
// import rows, including the running balance the statement declares per
// line. The column layout is auto-detected by matching headers against known
// profiles.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"

	enc "github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.ImportRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}
