package models

import "time"

// Payment is one ledger row. A multi-component "record payment" action
// produces several rows sharing one receipt number; each row carries its own
// component reference and per-component amount.
type Payment struct {
	ID             int64         `json:"id"`
	StudentID      int64         `json:"student_id" validate:"required"`
	FeeComponentID *int64        `json:"fee_component_id,omitempty"`
	Amount         int64         `json:"amount" validate:"required,gt=0"`
	PaymentMethod  PaymentMethod `json:"payment_method" validate:"required"`
	PaymentDate    string        `json:"payment_date"`
	AcademicYear   string        `json:"academic_year"`
	ReceiptNumber  string        `json:"receipt_number"`
	TransactionRef string        `json:"transaction_ref"`
	CreatedAt      time.Time     `json:"created_at"`
}

// PaymentDetail is a ledger row enriched with the student and component
// columns the dashboard table displays. Filled by the read-side join, never
// written back.
type PaymentDetail struct {
	Payment
	StudentName   string `json:"student_name"`
	StudentClass  string `json:"student_class"`
	RollNumber    string `json:"roll_number"`
	ComponentName string `json:"component_name,omitempty"`
}
