package payments

import (
	"fmt"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// ValidationKind identifies which rule a rejected request broke.
type ValidationKind string

const (
	InvalidStudent   ValidationKind = "invalid_student"
	InvalidComponent ValidationKind = "invalid_component"
	InvalidMethod    ValidationKind = "invalid_method"
	NoComponents     ValidationKind = "no_components"
	InvalidAmount    ValidationKind = "invalid_amount"
	MissingReference ValidationKind = "missing_reference"
)

// ValidationError rejects a request before anything is written. It is always
// local: a request that fails validation leaves the ledger untouched.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError wraps a failed collaborator call. Nothing about the
// in-memory state is assumed; callers reload the ledger to recover.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RowResult is the outcome of one row of a batch write.
type RowResult struct {
	Draft   models.Payment
	Created *models.Payment
	Err     error
}

// BatchResult collects per-row outcomes of a multi-row ledger write so a
// partial failure is observable instead of silently inconsistent.
type BatchResult struct {
	Rows []RowResult
}

// Created returns the rows that were persisted, in draft order.
func (r BatchResult) Created() []models.Payment {
	var out []models.Payment
	for _, row := range r.Rows {
		if row.Err == nil && row.Created != nil {
			out = append(out, *row.Created)
		}
	}
	return out
}

// FailedCount returns how many rows failed to persist.
func (r BatchResult) FailedCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Err != nil {
			n++
		}
	}
	return n
}

// FirstError returns the first per-row error, or nil.
func (r BatchResult) FirstError() error {
	for _, row := range r.Rows {
		if row.Err != nil {
			return row.Err
		}
	}
	return nil
}

// PartialBatchError reports a split-payment write where some rows landed and
// others did not. The created rows share ReceiptNumber, so the caller can
// re-query the ledger to see exactly which rows exist.
type PartialBatchError struct {
	ReceiptNumber string
	Result        BatchResult
}

func (e *PartialBatchError) Error() string {
	total := len(e.Result.Rows)
	return fmt.Sprintf("recorded %d of %d payment rows for receipt %s",
		total-e.Result.FailedCount(), total, e.ReceiptNumber)
}
