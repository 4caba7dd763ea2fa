// Package respond maps service results and the ledger error taxonomy onto
// HTTP responses so handlers stay thin.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error               string `json:"error"`
	ManualCleanupNeeded bool   `json:"manual_cleanup_needed,omitempty"`
}

// Error writes the status matching the error's kind. Validation, not-found
// and conflict errors carry their message so the caller learns which
// precondition failed; integrity errors are logged loudly and flagged for
// manual cleanup.
func Error(w http.ResponseWriter, err error) {
	var (
		validationErr *ledger.ValidationError
		conflictErr   *ledger.ConflictError
		integrityErr  *ledger.IntegrityError
	)

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		JSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &validationErr):
		JSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Reason})
	case errors.As(err, &conflictErr):
		JSON(w, http.StatusConflict, errorResponse{Error: conflictErr.Reason})
	case errors.As(err, &integrityErr):
		slog.Error("integrity failure", "op", integrityErr.Op, "error", integrityErr.Err,
			"manual_cleanup_needed", true)
		JSON(w, http.StatusInternalServerError, errorResponse{
			Error:               "ledger may be inconsistent",
			ManualCleanupNeeded: true,
		})
	default:
		slog.Error("internal error", "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
