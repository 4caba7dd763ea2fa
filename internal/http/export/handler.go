package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
	r.Get("/summary", h.summary)
}

type summaryResponse struct {
	Rows        int    `json:"rows"`
	TotalDebit  string `json:"total_debit"`
	TotalCredit string `json:"total_credit"`
	Body        string `json:"body"`
}

func parseFilter(r *http.Request) (ledger.ListFilter, error) {
	filter := ledger.ListFilter{}

	accountParam := r.URL.Query().Get("account_id")
	if accountParam == "" {
		return filter, fmt.Errorf("account_id query parameter is required")
	}

	accountID, err := uuid.Parse(accountParam)
	if err != nil {
		return filter, fmt.Errorf("invalid account_id: %w", err)
	}

	filter.AccountID = &accountID

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date: %w", err)
		}

		filter.StartDate = &t
	}

	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date: %w", err)
		}

		filter.EndDate = &t
	}

	return filter, nil
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", h.svc.Filename(filter)))

	if _, err := h.svc.Export(r.Context(), filter, w); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("failed to stream export", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var discard countingDiscard

	summary, err := h.svc.Export(r.Context(), filter, &discard)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, summaryResponse{
		Rows:        summary.Rows,
		TotalDebit:  summary.TotalDebit.StringFixed(2),
		TotalCredit: summary.TotalCredit.StringFixed(2),
		Body:        h.svc.Describe(summary),
	})
}

// countingDiscard swallows the CSV body when only the summary is wanted.
type countingDiscard struct{}

func (countingDiscard) Write(p []byte) (int, error) { return len(p), nil }
