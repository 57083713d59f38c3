package models

import "time"

// FeeComponent is a named, class-scoped charge with a fixed amount
// (e.g. "Tuition Fee" for "Class 10"). Component names are unique within a
// class. Amounts are whole currency units.
type FeeComponent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Class       string    `json:"class" validate:"required"`
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
