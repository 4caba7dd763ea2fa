package importer

import (
	"io"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Format string

const (
	// FormatStatement is the profile-detected bank statement CSV.
	FormatStatement Format = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.ImportRow, error)
}
