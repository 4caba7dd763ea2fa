package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/split"
)

type Handler struct {
	ledgerSvc *ledger.Service
	splitSvc  *split.Service
}

func NewHandler(ledgerSvc *ledger.Service, splitSvc *split.Service) *Handler {
	return &Handler{ledgerSvc: ledgerSvc, splitSvc: splitSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/lines", h.lines)
	r.Post("/{id}/split", h.split)
	r.Post("/{id}/unsplit", h.unsplit)
}

type createTransactionRequest struct {
	AccountID           uuid.UUID        `json:"account_id"`
	Date                time.Time        `json:"date"`
	Description         string           `json:"description"`
	Debit               *decimal.Decimal `json:"debit,omitempty"`
	Credit              *decimal.Decimal `json:"credit,omitempty"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	IsBalanceAdjustment bool             `json:"is_balance_adjustment"`
	Type                ledger.TypeCode  `json:"type,omitempty"`
	CategoryID          *uuid.UUID       `json:"category_id,omitempty"`
	Notes               string           `json:"notes,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := h.ledgerSvc.Create(r.Context(), ledger.CreateParams{
		AccountID:           req.AccountID,
		Date:                req.Date,
		Description:         req.Description,
		Debit:               req.Debit,
		Credit:              req.Credit,
		Balance:             req.Balance,
		IsBalanceAdjustment: req.IsBalanceAdjustment,
		Type:                req.Type,
		CategoryID:          req.CategoryID,
		Notes:               req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toRawResponse(raw))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("account_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid account_id", http.StatusBadRequest)
			return
		}

		filter.AccountID = &id
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	txs, err := h.ledgerSvc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]rawResponse, len(txs))
	for i, raw := range txs {
		resp[i] = toRawResponse(raw)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	raw, err := h.ledgerSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toRawResponse(raw))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lines(w http.ResponseWriter, r *http.Request) {
	mains, err := h.ledgerSvc.ListMains(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMainResponseList(mains))
}

type splitItemRequest struct {
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Type       ledger.TypeCode `json:"type,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}

type splitRequest struct {
	Items []splitItemRequest `json:"items"`
}

func (h *Handler) split(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]split.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = split.Item{
			CategoryID: item.CategoryID,
			Type:       item.Type,
			Amount:     item.Amount,
			Notes:      item.Notes,
		}
	}

	mains, err := h.splitSvc.Split(r.Context(), chi.URLParam(r, "id"), items)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toMainResponseList(mains))
}

func (h *Handler) unsplit(w http.ResponseWriter, r *http.Request) {
	main, err := h.splitSvc.Unsplit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMainResponse(main))
}
