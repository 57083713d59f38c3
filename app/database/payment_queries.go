package database

import (
	"database/sql"
	"time"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// InsertPayment persists one ledger row and returns it with the generated
// fields filled.
func InsertPayment(db *sql.DB, p models.Payment) (*models.Payment, error) {
	query := `INSERT INTO payments (student_id, fee_component_id, amount, payment_method, payment_date, academic_year, receipt_number, transaction_ref)
			  VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)
			  RETURNING id, created_at`
	err := db.QueryRow(query,
		p.StudentID, p.FeeComponentID, p.Amount, string(p.PaymentMethod),
		p.PaymentDate, p.AcademicYear, p.ReceiptNumber, p.TransactionRef,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePayment edits one ledger row. Empty date/year and a nil component
// keep the stored values.
func UpdatePayment(db *sql.DB, id int64, p models.Payment) (*models.Payment, error) {
	query := `UPDATE payments
			  SET amount = $1,
			      payment_method = $2,
			      transaction_ref = $3,
			      payment_date = COALESCE(NULLIF($4, '')::date, payment_date),
			      academic_year = COALESCE(NULLIF($5, ''), academic_year),
			      fee_component_id = COALESCE($6, fee_component_id)
			  WHERE id = $7
			  RETURNING id, student_id, fee_component_id, amount, payment_method, payment_date, academic_year, receipt_number, transaction_ref, created_at`
	updated, err := scanPayment(db.QueryRow(query,
		p.Amount, string(p.PaymentMethod), p.TransactionRef,
		p.PaymentDate, p.AcademicYear, p.FeeComponentID, id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePayment removes one ledger row. Rows sharing the receipt number are
// not touched.
func DeletePayment(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReceiptExists reports whether any ledger row already carries the receipt
// number.
func ReceiptExists(db *sql.DB, receiptNumber string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM payments WHERE receipt_number = $1)`, receiptNumber).Scan(&exists)
	return exists, err
}

// GetPaymentsWithDetails returns ledger rows enriched with the student and
// component columns the dashboard displays, newest first. studentID zero
// means no filter.
func GetPaymentsWithDetails(db *sql.DB, studentID int64) ([]models.PaymentDetail, error) {
	query := `SELECT p.id, p.student_id, p.fee_component_id, p.amount, p.payment_method,
			  p.payment_date, p.academic_year, p.receipt_number, p.transaction_ref, p.created_at,
			  s.name, s.class, s.roll_number, COALESCE(f.name, '')
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  LEFT JOIN fee_components f ON p.fee_component_id = f.id`
	args := []interface{}{}
	if studentID != 0 {
		query += ` WHERE p.student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.PaymentDetail
	for rows.Next() {
		var d models.PaymentDetail
		var method string
		var date time.Time
		err := rows.Scan(&d.ID, &d.StudentID, &d.FeeComponentID, &d.Amount, &method,
			&date, &d.AcademicYear, &d.ReceiptNumber, &d.TransactionRef, &d.CreatedAt,
			&d.StudentName, &d.StudentClass, &d.RollNumber, &d.ComponentName)
		if err != nil {
			return nil, err
		}
		d.PaymentMethod = models.PaymentMethod(method)
		d.PaymentDate = date.Format("2006-01-02")
		details = append(details, d)
	}
	return details, rows.Err()
}

func scanPayment(row *sql.Row) (*models.Payment, error) {
	var p models.Payment
	var method string
	var date time.Time
	err := row.Scan(&p.ID, &p.StudentID, &p.FeeComponentID, &p.Amount, &method,
		&date, &p.AcademicYear, &p.ReceiptNumber, &p.TransactionRef, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.PaymentMethod = models.PaymentMethod(method)
	p.PaymentDate = date.Format("2006-01-02")
	return &p, nil
}
