package reconcile

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/reconcile"
)

type Handler struct {
	svc *reconcile.Service
}

func NewHandler(svc *reconcile.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts under /accounts alongside the account handler.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/discrepancies", h.investigate)
}

type discrepancyResponse struct {
	Date             time.Time       `json:"date"`
	Expected         decimal.Decimal `json:"expected"`
	Declared         decimal.Decimal `json:"declared"`
	Difference       decimal.Decimal `json:"difference"`
	Credits          decimal.Decimal `json:"credits"`
	Debits           decimal.Decimal `json:"debits"`
	TransactionIDs   []string        `json:"transaction_ids,omitempty"`
	Source           string          `json:"source,omitempty"`
}

type reportResponse struct {
	AccountID       uuid.UUID             `json:"account_id"`
	CheckpointID    uuid.UUID             `json:"checkpoint_id"`
	WindowStart     *time.Time            `json:"window_start,omitempty"`
	WindowEnd       time.Time             `json:"window_end"`
	OpeningBalance  decimal.Decimal       `json:"opening_balance"`
	ExpectedClosing decimal.Decimal       `json:"expected_closing"`
	DeclaredClosing decimal.Decimal       `json:"declared_closing"`
	Discrepancies   []discrepancyResponse `json:"discrepancies"`
}

func (h *Handler) investigate(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	var checkpointID *uuid.UUID

	if s := r.URL.Query().Get("checkpoint_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid checkpoint_id", http.StatusBadRequest)
			return
		}

		checkpointID = &id
	}

	report, err := h.svc.Investigate(r.Context(), accountID, checkpointID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toReportResponse(report))
}

func toReportResponse(report *reconcile.Report) reportResponse {
	resp := reportResponse{
		AccountID:       report.AccountID,
		CheckpointID:    report.CheckpointID,
		WindowStart:     report.WindowStart,
		WindowEnd:       report.WindowEnd,
		OpeningBalance:  report.OpeningBalance,
		ExpectedClosing: report.ExpectedClosing,
		DeclaredClosing: report.DeclaredClosing,
		Discrepancies:   make([]discrepancyResponse, len(report.Discrepancies)),
	}

	for i, d := range report.Discrepancies {
		ids := make([]string, len(d.Transactions))
		for j, tx := range d.Transactions {
			ids[j] = tx.ID
		}

		resp.Discrepancies[i] = discrepancyResponse{
			Date:           d.Date,
			Expected:       d.Expected,
			Declared:       d.Declared,
			Difference:     d.Difference,
			Credits:        d.Credits,
			Debits:         d.Debits,
			TransactionIDs: ids,
			Source:         d.Source,
		}
	}

	return resp
}
