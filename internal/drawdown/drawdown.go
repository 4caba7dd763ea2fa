package drawdown

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes money we owe (debt) from money owed to us (loan).
type Kind string

const (
	KindDebt Kind = "debt"
	KindLoan Kind = "loan"
)

type Status string

const (
	StatusActive             Status = "active"
	StatusPartiallyWrittenOff Status = "partially_written_off"
	StatusWrittenOff         Status = "written_off"
	StatusSettled            Status = "settled"
	StatusOverdue            Status = "overdue"
)

// Terminal reports whether the drawdown can take no further payments or
// write-offs.
func (s Status) Terminal() bool {
	return s == StatusWrittenOff || s == StatusSettled
}

// Drawdown is a debt or loan principal outstanding against an account.
// Invariant: Remaining = Principal - Paid - WrittenOff, and Remaining >= 0.
type Drawdown struct {
	ID             uuid.UUID
	AccountID      uuid.UUID // the debt or loan account
	Kind           Kind
	CounterpartyID uuid.UUID
	Principal      decimal.Decimal
	Remaining      decimal.Decimal
	Paid           decimal.Decimal
	WrittenOff     decimal.Decimal
	Status         Status
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Counterparty is the business partner on the other end of a drawdown.
type Counterparty struct {
	ID       uuid.UUID
	EntityID uuid.UUID
	Name     string
}
