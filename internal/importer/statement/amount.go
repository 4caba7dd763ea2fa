package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseStatementAmount parses a statement amount string into a decimal.
// European formats use "." as thousands separator and "," as the decimal
// mark: "1.234,56" -> 1234.56, "-588,74" -> -588.74. Plain "1234.56" also
// parses.
func parseStatementAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	return decimal.NewFromString(clean)
}
