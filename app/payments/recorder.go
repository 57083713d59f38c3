package payments

import (
	"fmt"
	"strings"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// StudentDirectory supplies student records. Read-only to the recorder.
type StudentDirectory interface {
	GetAllStudents() ([]models.Student, error)
}

// FeeCatalog supplies the class-scoped fee components. Read-only to the
// recorder.
type FeeCatalog interface {
	GetAllComponents() ([]models.FeeComponent, error)
}

// Ledger is the payment store the recorder writes to. CreateBatch persists
// the rows of one split payment and reports per-row outcomes; there is no
// multi-row transaction and no rollback of rows that already landed.
type Ledger interface {
	CreateBatch(rows []models.Payment) BatchResult
	Update(id int64, row models.Payment) (*models.Payment, error)
	Delete(id int64) error
	GetAll() ([]models.PaymentDetail, error)
	ReceiptExists(receiptNumber string) (bool, error)
}

// Recorder turns one "record payment" action into validated, persisted
// ledger rows sharing a receipt number.
type Recorder struct {
	directory StudentDirectory
	catalog   FeeCatalog
	ledger    Ledger
}

func NewRecorder(directory StudentDirectory, catalog FeeCatalog, ledger Ledger) *Recorder {
	return &Recorder{directory: directory, catalog: catalog, ledger: ledger}
}

// Result is a successfully recorded payment action.
type Result struct {
	ReceiptNumber string
	Payments      []models.Payment
}

// Record validates the request, expands it into one row per resolved fee
// component, stamps a fresh receipt number across the rows and persists
// them. Validation failures leave the ledger untouched. A write where only
// some rows landed is reported as *PartialBatchError.
func (r *Recorder) Record(req Request) (*Result, error) {
	students, err := r.directory.GetAllStudents()
	if err != nil {
		return nil, &PersistenceError{Op: "load students", Err: err}
	}
	catalog, err := r.catalog.GetAllComponents()
	if err != nil {
		return nil, &PersistenceError{Op: "load fee components", Err: err}
	}

	plan, err := BuildPlan(req, students, catalog)
	if err != nil {
		return nil, err
	}

	receiptNumber, err := r.uniqueReceiptNumber()
	if err != nil {
		return nil, err
	}
	plan.Stamp(receiptNumber)

	result := r.ledger.CreateBatch(plan.Rows)
	failed := result.FailedCount()
	switch {
	case failed == 0:
		return &Result{ReceiptNumber: receiptNumber, Payments: result.Created()}, nil
	case failed == len(result.Rows):
		return nil, &PersistenceError{Op: "create payments", Err: result.FirstError()}
	default:
		return nil, &PartialBatchError{ReceiptNumber: receiptNumber, Result: result}
	}
}

// Update edits exactly one ledger row: amount is re-parsed, the
// method/reference rule is re-validated, and a component change must still
// resolve to the student's class. No re-split, no new receipt number.
func (r *Recorder) Update(id int64, upd Request) (*models.Payment, error) {
	amount, err := parseAmount(upd.Amount)
	if err != nil {
		return nil, err
	}
	if !upd.Method.IsValid() {
		return nil, &ValidationError{Kind: InvalidMethod, Message: fmt.Sprintf("unknown payment method %q", upd.Method)}
	}
	ref := strings.TrimSpace(upd.TransactionRef)
	if upd.Method.RequiresReference() {
		if ref == "" {
			return nil, &ValidationError{Kind: MissingReference, Message: "transaction reference is required for non-cash payments"}
		}
	} else {
		ref = ""
	}

	row := models.Payment{
		Amount:         amount,
		PaymentMethod:  upd.Method,
		PaymentDate:    strings.TrimSpace(upd.PaymentDate),
		AcademicYear:   strings.TrimSpace(upd.AcademicYear),
		TransactionRef: ref,
	}

	// A re-targeted component must exist and belong to the student's class.
	if !upd.Selection.AllForClass() && upd.Selection.ComponentID() != 0 {
		students, err := r.directory.GetAllStudents()
		if err != nil {
			return nil, &PersistenceError{Op: "load students", Err: err}
		}
		student, ok := findStudent(students, upd.StudentID)
		if !ok {
			return nil, &ValidationError{Kind: InvalidStudent, Message: fmt.Sprintf("student %d not found", upd.StudentID)}
		}
		catalog, err := r.catalog.GetAllComponents()
		if err != nil {
			return nil, &PersistenceError{Op: "load fee components", Err: err}
		}
		components, err := resolveComponents(upd.Selection, student, catalog)
		if err != nil {
			return nil, err
		}
		componentID := components[0].ID
		row.FeeComponentID = &componentID
	}

	updated, err := r.ledger.Update(id, row)
	if err != nil {
		return nil, &PersistenceError{Op: "update payment", Err: err}
	}
	return updated, nil
}

// Delete removes one ledger row. Sibling rows sharing the receipt number are
// untouched; deleting an id that does not exist is an error.
func (r *Recorder) Delete(id int64) error {
	if err := r.ledger.Delete(id); err != nil {
		return &PersistenceError{Op: "delete payment", Err: err}
	}
	return nil
}
