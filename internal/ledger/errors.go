package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced account, transaction, checkpoint
// or drawdown does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports input that violates a business rule: amount
// mismatches, wrong account types, not-matched/not-split states.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Invalidf builds a ValidationError from a format string.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports a lost concurrent-modification race, e.g. two
// requests matching the same transaction.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// Conflictf builds a ConflictError from a format string.
func Conflictf(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a multi-step write that failed partway and whose
// rollback also failed, leaving the store possibly inconsistent. Callers must
// surface it loudly; it signals manual cleanup, not a retry.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: store may be inconsistent, manual cleanup needed: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }
