package checkpoint

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkpoint is an externally declared balance for an account as of a date,
// the ground truth reconciliation compares the ledger against.
type Checkpoint struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	Date              time.Time
	DeclaredBalance   decimal.Decimal
	CalculatedBalance *decimal.Decimal
	ImportBatchID     *uuid.UUID
	CreatedAt         time.Time
}

// Source reports where the declared balance came from.
func (c *Checkpoint) Source() string {
	if c.ImportBatchID != nil {
		return "import"
	}

	return "manual"
}
