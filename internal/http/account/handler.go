package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/deactivate", h.deactivate)
	r.Post("/{id}/recompute", h.recompute)
}

type createAccountRequest struct {
	EntityID    uuid.UUID        `json:"entity_id"`
	Name        string           `json:"name"`
	Type        account.Type     `json:"type"`
	Currency    string           `json:"currency"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
}

type accountResponse struct {
	ID          uuid.UUID        `json:"id"`
	EntityID    uuid.UUID        `json:"entity_id"`
	Name        string           `json:"name"`
	Type        account.Type     `json:"type"`
	Currency    string           `json:"currency"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
	Balance     decimal.Decimal  `json:"balance"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		ID:          acc.ID,
		EntityID:    acc.EntityID,
		Name:        acc.Name,
		Type:        acc.Type,
		Currency:    acc.Currency,
		CreditLimit: acc.CreditLimit,
		Balance:     acc.Balance,
		Active:      acc.Active,
		CreatedAt:   acc.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Create(r.Context(), account.CreateParams{
		EntityID:    req.EntityID,
		Name:        req.Name,
		Type:        req.Type,
		Currency:    req.Currency,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(acc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(r.URL.Query().Get("entity_id"))
	if err != nil {
		http.Error(w, "entity_id query parameter is required", http.StatusBadRequest)
		return
	}

	accounts, err := h.svc.List(r.Context(), entityID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = toResponse(acc)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(acc))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	balance, err := h.svc.RecomputeBalance(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]decimal.Decimal{"balance": balance})
}
