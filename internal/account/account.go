package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies an account for the pairing rules.
type Type string

const (
	TypeBank           Type = "bank"
	TypeCash           Type = "cash"
	TypeCreditCard     Type = "credit_card"
	TypeCreditLine     Type = "credit_line"
	TypeTermLoan       Type = "term_loan"
	TypeLoanReceivable Type = "loan_receivable"
	TypeInvestment     Type = "investment"
)

// IsCashSide reports whether the account can be the money source of a
// drawdown or disbursement.
func (t Type) IsCashSide() bool {
	return t == TypeBank || t == TypeCash
}

// IsDebtSide reports whether the account can carry a debt drawdown.
func (t Type) IsDebtSide() bool {
	return t == TypeCreditCard || t == TypeCreditLine || t == TypeTermLoan
}

type Account struct {
	ID          uuid.UUID
	EntityID    uuid.UUID
	Name        string
	Type        Type
	Currency    string
	CreditLimit *decimal.Decimal // debt-type accounts only
	Balance     decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
