package checkpoint

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
)

type Handler struct {
	svc *checkpoint.Service
}

func NewHandler(svc *checkpoint.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.declare)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type declareRequest struct {
	AccountID       uuid.UUID       `json:"account_id"`
	Date            time.Time       `json:"date"`
	DeclaredBalance decimal.Decimal `json:"declared_balance"`
}

type checkpointResponse struct {
	ID                uuid.UUID        `json:"id"`
	AccountID         uuid.UUID        `json:"account_id"`
	Date              time.Time        `json:"date"`
	DeclaredBalance   decimal.Decimal  `json:"declared_balance"`
	CalculatedBalance *decimal.Decimal `json:"calculated_balance,omitempty"`
	Source            string           `json:"source"`
	CreatedAt         time.Time        `json:"created_at"`
}

func toCheckpointResponse(cp *checkpoint.Checkpoint) checkpointResponse {
	return checkpointResponse{
		ID:                cp.ID,
		AccountID:         cp.AccountID,
		Date:              cp.Date,
		DeclaredBalance:   cp.DeclaredBalance,
		CalculatedBalance: cp.CalculatedBalance,
		Source:            cp.Source(),
		CreatedAt:         cp.CreatedAt,
	}
}

func (h *Handler) declare(w http.ResponseWriter, r *http.Request) {
	var req declareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cp, err := h.svc.Declare(r.Context(), checkpoint.DeclareParams{
		AccountID:       req.AccountID,
		Date:            req.Date,
		DeclaredBalance: req.DeclaredBalance,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toCheckpointResponse(cp))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		http.Error(w, "invalid account_id", http.StatusBadRequest)
		return
	}

	cps, err := h.svc.List(r.Context(), accountID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]checkpointResponse, len(cps))
	for i, cp := range cps {
		resp[i] = toCheckpointResponse(cp)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid checkpoint id", http.StatusBadRequest)
		return
	}

	cp, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCheckpointResponse(cp))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid checkpoint id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
