package database

import (
	"database/sql"
	"sync"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/payments"
)

// Store adapts the query helpers to the collaborator interfaces the payment
// recorder consumes.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAllStudents() ([]models.Student, error) {
	return GetStudents(s.db)
}

func (s *Store) GetAllComponents() ([]models.FeeComponent, error) {
	return GetFeeComponents(s.db)
}

// CreateBatch writes the rows of one split payment concurrently and reports
// the outcome of every row. There is no multi-row transaction: rows that
// landed stay even when siblings fail, which the per-row results make
// observable.
func (s *Store) CreateBatch(rows []models.Payment) payments.BatchResult {
	results := make([]payments.RowResult, len(rows))
	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		go func(i int, row models.Payment) {
			defer wg.Done()
			created, err := InsertPayment(s.db, row)
			results[i] = payments.RowResult{Draft: row, Created: created, Err: err}
		}(i, row)
	}
	wg.Wait()
	return payments.BatchResult{Rows: results}
}

func (s *Store) Update(id int64, row models.Payment) (*models.Payment, error) {
	return UpdatePayment(s.db, id, row)
}

func (s *Store) Delete(id int64) error {
	return DeletePayment(s.db, id)
}

func (s *Store) GetAll() ([]models.PaymentDetail, error) {
	return GetPaymentsWithDetails(s.db, 0)
}

func (s *Store) ReceiptExists(receiptNumber string) (bool, error) {
	return ReceiptExists(s.db, receiptNumber)
}
