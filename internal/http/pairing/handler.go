package pairing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/pairing"
)

type Handler struct {
	svc *pairing.Service
}

func NewHandler(svc *pairing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.match)
	r.Delete("/{id}", h.unmatch)
}

type matchRequest struct {
	OutTransactionID uuid.UUID `json:"out_transaction_id"`
	InTransactionID  uuid.UUID `json:"in_transaction_id"`
}

type matchResponse struct {
	OutTransactionID uuid.UUID `json:"out_transaction_id"`
	InTransactionID  uuid.UUID `json:"in_transaction_id"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pair, err := h.svc.Match(r.Context(), req.OutTransactionID, req.InTransactionID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, matchResponse{
		OutTransactionID: pair.Out.ID,
		InTransactionID:  pair.In.ID,
	})
}

func (h *Handler) unmatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Unmatch(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
