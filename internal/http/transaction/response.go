package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type rawResponse struct {
	ID                  string           `json:"id"`
	AccountID           uuid.UUID        `json:"account_id"`
	Date                time.Time        `json:"date"`
	Description         string           `json:"description"`
	Debit               *decimal.Decimal `json:"debit,omitempty"`
	Credit              *decimal.Decimal `json:"credit,omitempty"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	IsBalanceAdjustment bool             `json:"is_balance_adjustment"`
	Sequence            int              `json:"sequence"`
	CreatedAt           time.Time        `json:"created_at"`
}

func toRawResponse(raw *ledger.RawTransaction) rawResponse {
	return rawResponse{
		ID:                  raw.ID,
		AccountID:           raw.AccountID,
		Date:                raw.Date,
		Description:         raw.Description,
		Debit:               raw.Debit,
		Credit:              raw.Credit,
		Balance:             raw.Balance,
		IsBalanceAdjustment: raw.IsBalanceAdjustment,
		Sequence:            raw.Sequence,
		CreatedAt:           raw.CreatedAt,
	}
}

type mainResponse struct {
	ID               uuid.UUID       `json:"id"`
	RawTransactionID string          `json:"raw_transaction_id"`
	AccountID        uuid.UUID       `json:"account_id"`
	Type             ledger.TypeCode `json:"type"`
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Direction        ledger.Direction `json:"direction"`
	IsSplit          bool            `json:"is_split"`
	SplitSequence    int             `json:"split_sequence"`
	MatchedID        *uuid.UUID      `json:"matched_transaction_id,omitempty"`
	DrawdownID       *uuid.UUID      `json:"drawdown_id,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
}

func toMainResponse(main *ledger.MainTransaction) mainResponse {
	return mainResponse{
		ID:               main.ID,
		RawTransactionID: main.RawTransactionID,
		AccountID:        main.AccountID,
		Type:             main.Type,
		CategoryID:       main.CategoryID,
		Amount:           main.Amount,
		Direction:        main.Direction,
		IsSplit:          main.IsSplit,
		SplitSequence:    main.SplitSequence,
		MatchedID:        main.MatchedID,
		DrawdownID:       main.DrawdownID,
		Notes:            main.Notes,
		Date:             main.Date,
		Description:      main.Description,
	}
}

func toMainResponseList(mains []*ledger.MainTransaction) []mainResponse {
	resp := make([]mainResponse, len(mains))
	for i, main := range mains {
		resp[i] = toMainResponse(main)
	}

	return resp
}
