package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/tally/internal/importer/statement"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]ledger.ImportRow, error) {
	var importer Importer

	switch format {
	case FormatStatement:
		importer = s.statementImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
