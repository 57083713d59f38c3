package payments

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

var errRowMissing = errors.New("row not found")

// fakeStore implements all three collaborator interfaces in memory.
type fakeStore struct {
	students   []models.Student
	components []models.FeeComponent
	rows       []models.Payment
	nextID     int64

	failCreateIdx map[int]error // batch index -> forced insert failure
	studentsErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:      fixtureStudents(),
		components:    fixtureCatalog(),
		nextID:        1,
		failCreateIdx: map[int]error{},
	}
}

func (f *fakeStore) GetAllStudents() ([]models.Student, error) {
	if f.studentsErr != nil {
		return nil, f.studentsErr
	}
	return f.students, nil
}

func (f *fakeStore) GetAllComponents() ([]models.FeeComponent, error) {
	return f.components, nil
}

func (f *fakeStore) CreateBatch(rows []models.Payment) BatchResult {
	result := BatchResult{Rows: make([]RowResult, len(rows))}
	for i, row := range rows {
		if err, ok := f.failCreateIdx[i]; ok {
			result.Rows[i] = RowResult{Draft: row, Err: err}
			continue
		}
		row.ID = f.nextID
		f.nextID++
		f.rows = append(f.rows, row)
		created := row
		result.Rows[i] = RowResult{Draft: row, Created: &created}
	}
	return result
}

func (f *fakeStore) Update(id int64, patch models.Payment) (*models.Payment, error) {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		row := &f.rows[i]
		row.Amount = patch.Amount
		row.PaymentMethod = patch.PaymentMethod
		row.TransactionRef = patch.TransactionRef
		if patch.PaymentDate != "" {
			row.PaymentDate = patch.PaymentDate
		}
		if patch.AcademicYear != "" {
			row.AcademicYear = patch.AcademicYear
		}
		if patch.FeeComponentID != nil {
			row.FeeComponentID = patch.FeeComponentID
		}
		updated := *row
		return &updated, nil
	}
	return nil, errRowMissing
}

func (f *fakeStore) Delete(id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errRowMissing
}

func (f *fakeStore) GetAll() ([]models.PaymentDetail, error) {
	details := make([]models.PaymentDetail, len(f.rows))
	for i, row := range f.rows {
		details[i] = models.PaymentDetail{Payment: row}
	}
	return details, nil
}

func (f *fakeStore) ReceiptExists(receiptNumber string) (bool, error) {
	for _, row := range f.rows {
		if row.ReceiptNumber == receiptNumber {
			return true, nil
		}
	}
	return false, nil
}

func TestRecordSingleComponent(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	result, err := recorder.Record(Request{
		StudentID:      1,
		Selection:      SelectComponent(11),
		Amount:         "15000",
		Method:         models.MethodUPI,
		TransactionRef: "TXN123456789",
		PaymentDate:    "2024-01-15",
		AcademicYear:   "2024-25",
	})

	assert.NoError(t, err)
	assert.Len(t, result.Payments, 1)
	assert.Len(t, store.rows, 1)
	assert.Equal(t, int64(15000), store.rows[0].Amount)
	assert.NotEmpty(t, result.ReceiptNumber)
	assert.Equal(t, result.ReceiptNumber, store.rows[0].ReceiptNumber)
}

func TestRecordSelectAllSharesOneReceipt(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	result, err := recorder.Record(Request{
		StudentID:   1,
		Selection:   SelectAllForClass(),
		Amount:      "16500",
		Method:      models.MethodCash,
		PaymentDate: "2024-01-15",
	})

	assert.NoError(t, err)
	assert.Len(t, store.rows, 2)

	var sum int64
	for _, row := range store.rows {
		sum += row.Amount
		assert.Equal(t, result.ReceiptNumber, row.ReceiptNumber)
		assert.Empty(t, row.TransactionRef)
	}
	assert.Equal(t, int64(16500), sum)
}

func TestRecordReceiptNumbersAreUniqueAcrossActions(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		result, err := recorder.Record(Request{
			StudentID: 1,
			Selection: SelectComponent(11),
			Amount:    "100",
			Method:    models.MethodCash,
		})
		assert.NoError(t, err)
		assert.False(t, seen[result.ReceiptNumber], "receipt %s reused", result.ReceiptNumber)
		seen[result.ReceiptNumber] = true
	}
}

func TestRecordRejectsBeforeAnyWrite(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	_, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectComponent(11),
		Amount:    "15000",
		Method:    models.MethodUPI, // no transaction_ref
	})

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, MissingReference, vErr.Kind)
	assert.Empty(t, store.rows, "validation failure must not persist anything")
}

func TestRecordPartialBatchFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreateIdx[1] = fmt.Errorf("connection reset")
	recorder := NewRecorder(store, store, store)

	_, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectAllForClass(),
		Amount:    "16500",
		Method:    models.MethodCash,
	})

	var pErr *PartialBatchError
	if assert.True(t, errors.As(err, &pErr), "expected PartialBatchError, got %v", err) {
		assert.Equal(t, 1, pErr.Result.FailedCount())
		assert.NotEmpty(t, pErr.ReceiptNumber)
		assert.Contains(t, pErr.Error(), "1 of 2")
		// the landed row is queryable by the shared receipt number
		if assert.Len(t, store.rows, 1) {
			assert.Equal(t, pErr.ReceiptNumber, store.rows[0].ReceiptNumber)
		}
	}
}

func TestRecordTotalBatchFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreateIdx[0] = fmt.Errorf("down")
	store.failCreateIdx[1] = fmt.Errorf("down")
	recorder := NewRecorder(store, store, store)

	_, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectAllForClass(),
		Amount:    "16500",
		Method:    models.MethodCash,
	})

	var pErr *PersistenceError
	assert.True(t, errors.As(err, &pErr), "expected PersistenceError, got %v", err)
	assert.Empty(t, store.rows)
}

func TestRecordDirectoryFailureSurfaces(t *testing.T) {
	store := newFakeStore()
	store.studentsErr = fmt.Errorf("timeout")
	recorder := NewRecorder(store, store, store)

	_, err := recorder.Record(Request{StudentID: 1, Selection: SelectComponent(11), Amount: "100", Method: models.MethodCash})

	var pErr *PersistenceError
	assert.True(t, errors.As(err, &pErr))
	assert.True(t, strings.Contains(err.Error(), "load students"))
}

func TestDeleteMissingRowIsAnError(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	err := recorder.Delete(42)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errRowMissing))
}

func TestDeleteRemovesOnlyOneSiblingRow(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	result, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectAllForClass(),
		Amount:    "16500",
		Method:    models.MethodCash,
	})
	assert.NoError(t, err)
	assert.Len(t, store.rows, 2)

	assert.NoError(t, recorder.Delete(result.Payments[0].ID))
	assert.Len(t, store.rows, 1, "sibling rows of the receipt must survive")
	assert.Equal(t, result.ReceiptNumber, store.rows[0].ReceiptNumber)
}

func TestUpdateRoundTrip(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	created, err := recorder.Record(Request{
		StudentID:   1,
		Selection:   SelectComponent(11),
		Amount:      "15000",
		Method:      models.MethodCash,
		PaymentDate: "2024-01-15",
	})
	assert.NoError(t, err)
	id := created.Payments[0].ID

	updated, err := recorder.Update(id, Request{
		StudentID:      1,
		Amount:         "14000",
		Method:         models.MethodCheque,
		TransactionRef: "CHQ-0042",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(14000), updated.Amount)
	assert.Equal(t, models.MethodCheque, updated.PaymentMethod)
	assert.Equal(t, "CHQ-0042", updated.TransactionRef)
	assert.Equal(t, "2024-01-15", updated.PaymentDate, "omitted date keeps the stored value")

	// back to cash: the stored reference is force-cleared
	updated, err = recorder.Update(id, Request{StudentID: 1, Amount: "14000", Method: models.MethodCash, TransactionRef: "CHQ-0042"})
	assert.NoError(t, err)
	assert.Empty(t, updated.TransactionRef)
}

func TestUpdateRevalidatesReferenceRule(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	created, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectComponent(11),
		Amount:    "15000",
		Method:    models.MethodCash,
	})
	assert.NoError(t, err)

	_, err = recorder.Update(created.Payments[0].ID, Request{
		StudentID: 1,
		Amount:    "15000",
		Method:    models.MethodCheque, // no reference supplied
	})

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, MissingReference, vErr.Kind)
	}
	assert.Equal(t, models.MethodCash, store.rows[0].PaymentMethod, "rejected update must not change the row")
}

func TestUpdateRejectsComponentOfAnotherClass(t *testing.T) {
	store := newFakeStore()
	recorder := NewRecorder(store, store, store)

	created, err := recorder.Record(Request{
		StudentID: 1,
		Selection: SelectComponent(11),
		Amount:    "15000",
		Method:    models.MethodCash,
	})
	assert.NoError(t, err)

	_, err = recorder.Update(created.Payments[0].ID, Request{
		StudentID: 1,
		Selection: SelectComponent(13), // Class 9 component, student is Class 10
		Amount:    "15000",
		Method:    models.MethodCash,
	})

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, InvalidComponent, vErr.Kind)
	}
}
