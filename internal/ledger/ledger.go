package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction indicates which side of the ledger an amount sits on.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// TypeCode identifies an entry in the transaction-type catalog.
type TypeCode string

const (
	TypeIncome       TypeCode = "INCOME"
	TypeExpense      TypeCode = "EXPENSE"
	TypeTransferOut  TypeCode = "TRF_OUT"
	TypeTransferIn   TypeCode = "TRF_IN"
	TypeCardPayment  TypeCode = "CC_PAY"
	TypeDebtTake     TypeCode = "DEBT_TAKE"
	TypeDebtPay      TypeCode = "DEBT_PAY"
	TypeLoanDisburse TypeCode = "LOAN_DISBURSE"
	TypeLoanCollect  TypeCode = "LOAN_COLLECT"
	TypeLoanWriteOff TypeCode = "LOAN_WRITEOFF"
)

// Tolerance is the maximum amount difference accepted when comparing two
// sides of a pairing or a declared balance against a computed one. It covers
// rounding of imported values, not a business allowance.
var Tolerance = decimal.NewFromFloat(0.01)

// RawTransaction is the source-of-truth ledger entry. Exactly one of Debit
// or Credit is set.
type RawTransaction struct {
	ID                  string
	AccountID           uuid.UUID
	Date                time.Time
	Description         string
	Debit               *decimal.Decimal
	Credit              *decimal.Decimal
	Balance             *decimal.Decimal // running balance declared by the source, if any
	IsBalanceAdjustment bool
	CheckpointID        *uuid.UUID
	Sequence            int // tie-break ordering for same-day entries
	CreatedAt           time.Time
	DeletedAt           *time.Time
}

// Amount returns the single non-null amount of the transaction.
func (t *RawTransaction) Amount() decimal.Decimal {
	if t.Debit != nil {
		return *t.Debit
	}

	if t.Credit != nil {
		return *t.Credit
	}

	return decimal.Zero
}

// Direction returns which side the non-null amount sits on.
func (t *RawTransaction) Direction() Direction {
	if t.Debit != nil {
		return Debit
	}

	return Credit
}

// MainTransaction is the categorized, possibly-split view derived from a
// RawTransaction. A raw transaction always has at least one main transaction;
// it has more than one only while split.
type MainTransaction struct {
	ID                uuid.UUID
	RawTransactionID  string
	AccountID         uuid.UUID
	Type              TypeCode
	CategoryID        *uuid.UUID
	Amount            decimal.Decimal
	Direction         Direction
	IsSplit           bool
	SplitSequence     int
	MatchedID         *uuid.UUID // paired main transaction on the other account
	DrawdownID        *uuid.UUID
	CreditMemoOfID    *uuid.UUID // drawdown this transaction is a credit memo for
	Notes             string
	Date              time.Time
	Description       string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// NewRawID mints a globally unique raw transaction id.
func NewRawID() string {
	return "rt_" + uuid.NewString()
}
