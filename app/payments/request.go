package payments

import (
	"fmt"
	"time"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// Selection says which fee components a payment request targets: one
// specific component, or every component for the student's class.
type Selection struct {
	componentID int64
	allForClass bool
}

// SelectComponent targets a single fee component.
func SelectComponent(id int64) Selection {
	return Selection{componentID: id}
}

// SelectAllForClass targets every component of the student's class.
func SelectAllForClass() Selection {
	return Selection{allForClass: true}
}

// AllForClass reports whether the selection expands to the whole class
// catalog.
func (s Selection) AllForClass() bool {
	return s.allForClass
}

// ComponentID returns the single targeted component id; only meaningful when
// AllForClass is false.
func (s Selection) ComponentID() int64 {
	return s.componentID
}

// Request is one user-initiated "record payment" action, built once before
// plan building. Amount is kept as entered so parsing failures surface as
// validation errors rather than zero values.
type Request struct {
	StudentID      int64
	Selection      Selection
	Amount         string
	Method         models.PaymentMethod
	TransactionRef string
	PaymentDate    string
	AcademicYear   string
}

// DefaultAcademicYear computes the "YYYY-YY+1" label for a date, with the
// academic year rolling over in April.
func DefaultAcademicYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
