package drawdown

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/drawdown"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
)

type Handler struct {
	svc *drawdown.Service
}

func NewHandler(svc *drawdown.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/repayments", h.repay)
	r.Post("/{id}/write-off", h.writeOff)
}

type createDrawdownRequest struct {
	Kind            drawdown.Kind   `json:"kind"`
	SourceAccountID uuid.UUID       `json:"source_account_id"`
	AccountID       uuid.UUID       `json:"account_id"`
	CounterpartyID  uuid.UUID       `json:"counterparty_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
}

type drawdownResponse struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"account_id"`
	Kind           drawdown.Kind   `json:"kind"`
	CounterpartyID uuid.UUID       `json:"counterparty_id"`
	Principal      decimal.Decimal `json:"principal"`
	Remaining      decimal.Decimal `json:"remaining"`
	Paid           decimal.Decimal `json:"paid"`
	WrittenOff     decimal.Decimal `json:"written_off"`
	Status         drawdown.Status `json:"status"`
	Date           time.Time       `json:"date"`
}

func toDrawdownResponse(dd *drawdown.Drawdown) drawdownResponse {
	return drawdownResponse{
		ID:             dd.ID,
		AccountID:      dd.AccountID,
		Kind:           dd.Kind,
		CounterpartyID: dd.CounterpartyID,
		Principal:      dd.Principal,
		Remaining:      dd.Remaining,
		Paid:           dd.Paid,
		WrittenOff:     dd.WrittenOff,
		Status:         dd.Status,
		Date:           dd.Date,
	}
}

type createDrawdownResponse struct {
	Drawdown     drawdownResponse `json:"drawdown"`
	SourceSideID uuid.UUID        `json:"source_transaction_id"`
	SettleSideID uuid.UUID        `json:"settle_transaction_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDrawdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Create(r.Context(), drawdown.CreateParams{
		Kind:            req.Kind,
		SourceAccountID: req.SourceAccountID,
		AccountID:       req.AccountID,
		CounterpartyID:  req.CounterpartyID,
		Amount:          req.Amount,
		Date:            req.Date,
		Description:     req.Description,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createDrawdownResponse{
		Drawdown:     toDrawdownResponse(result.Drawdown),
		SourceSideID: result.SourceSide.ID,
		SettleSideID: result.SettleSide.ID,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "invalid account_id", http.StatusBadRequest)
		return
	}

	dds, err := h.svc.List(r.Context(), accountID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]drawdownResponse, len(dds))
	for i, dd := range dds {
		resp[i] = toDrawdownResponse(dd)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid drawdown id", http.StatusBadRequest)
		return
	}

	dd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDrawdownResponse(dd))
}

type repayRequest struct {
	SourceAccountID uuid.UUID       `json:"source_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
}

type repayResponse struct {
	Drawdown      drawdownResponse `json:"drawdown"`
	PaymentSideID uuid.UUID        `json:"payment_transaction_id"`
	SettleSideID  uuid.UUID        `json:"settle_transaction_id"`
	CreditMemoID  *uuid.UUID       `json:"credit_memo_id,omitempty"`
}

func (h *Handler) repay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid drawdown id", http.StatusBadRequest)
		return
	}

	var req repayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Repay(r.Context(), id, drawdown.RepayParams{
		SourceAccountID: req.SourceAccountID,
		Amount:          req.Amount,
		Date:            req.Date,
		Description:     req.Description,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := repayResponse{
		Drawdown:      toDrawdownResponse(result.Drawdown),
		PaymentSideID: result.PaymentSide.ID,
		SettleSideID:  result.SettleSide.ID,
	}

	if result.CreditMemo != nil {
		resp.CreditMemoID = &result.CreditMemo.ID
	}

	respond.JSON(w, http.StatusCreated, resp)
}

type writeOffRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Reason string          `json:"reason,omitempty"`
}

func (h *Handler) writeOff(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid drawdown id", http.StatusBadRequest)
		return
	}

	var req writeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dd, err := h.svc.WriteOff(r.Context(), id, drawdown.WriteOffParams{
		Amount: req.Amount,
		Date:   req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDrawdownResponse(dd))
}
