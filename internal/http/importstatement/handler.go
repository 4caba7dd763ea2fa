package importstatement

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{importSvc: importSvc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
}

type importRowDTO struct {
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Debit       *decimal.Decimal `json:"debit,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
}

type conflictDTO struct {
	Incoming   importRowDTO `json:"incoming"`
	ExistingID string       `json:"existing_id"`
}

type importConflictResponse struct {
	New       []importRowDTO `json:"new"`
	Conflicts []conflictDTO  `json:"conflicts"`
}

type importSuccessResponse struct {
	Imported     int        `json:"imported"`
	BatchID      uuid.UUID  `json:"batch_id"`
	CheckpointID *uuid.UUID `json:"checkpoint_id,omitempty"`
	Transactions []string   `json:"transaction_ids"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(importer.FormatStatement, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ledgerSvc.ImportStatement(r.Context(), accountID, rows)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]importRowDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, row := range result.New {
			resp.New = append(resp.New, toRowDTO(row))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming:   toRowDTO(c.Incoming),
				ExistingID: c.Existing.ID,
			})
		}

		respond.JSON(w, http.StatusConflict, resp)

		return
	}

	ids := make([]string, len(result.Imported))
	for i, tx := range result.Imported {
		ids[i] = tx.ID
	}

	respond.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported:     len(result.Imported),
		BatchID:      result.BatchID,
		CheckpointID: result.CheckpointID,
		Transactions: ids,
	})
}

func toRowDTO(row ledger.ImportRow) importRowDTO {
	return importRowDTO{
		Date:        row.Date,
		Description: row.Description,
		Debit:       row.Debit,
		Credit:      row.Credit,
		Balance:     row.Balance,
	}
}
