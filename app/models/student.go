package models

import "time"

// Student represents an enrolled student. The payment workflow only ever
// reads students; they are managed through their own CRUD surface.
type Student struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Phone       string    `json:"phone"`
	Class       string    `json:"class" validate:"required"`
	RollNumber  string    `json:"roll_number" validate:"required"`
	ParentName  string    `json:"parent_name"`
	ParentPhone string    `json:"parent_phone"`
	Address     string    `json:"address"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}
