package payments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// Plan is the validated expansion of a Request: one draft ledger row per
// resolved fee component, amounts summing exactly to the requested total.
// Rows carry no receipt number until Stamp is called.
type Plan struct {
	Student    models.Student
	Components []models.FeeComponent
	Total      int64
	Rows       []models.Payment
}

// Stamp writes the shared receipt number onto every row of the plan.
func (p *Plan) Stamp(receiptNumber string) {
	for i := range p.Rows {
		p.Rows[i].ReceiptNumber = receiptNumber
	}
}

// BuildPlan validates a payment request against the student directory and
// fee catalog and expands it into draft ledger rows. All failures are
// ValidationErrors; nothing is persisted here.
func BuildPlan(req Request, students []models.Student, catalog []models.FeeComponent) (*Plan, error) {
	student, ok := findStudent(students, req.StudentID)
	if !ok {
		return nil, &ValidationError{Kind: InvalidStudent, Message: fmt.Sprintf("student %d not found", req.StudentID)}
	}

	components, err := resolveComponents(req.Selection, student, catalog)
	if err != nil {
		return nil, err
	}

	total, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if !req.Method.IsValid() {
		return nil, &ValidationError{Kind: InvalidMethod, Message: fmt.Sprintf("unknown payment method %q", req.Method)}
	}
	ref := strings.TrimSpace(req.TransactionRef)
	if req.Method.RequiresReference() {
		if ref == "" {
			return nil, &ValidationError{Kind: MissingReference, Message: "transaction reference is required for non-cash payments"}
		}
	} else {
		// Cash never carries a reference, whatever the form sent.
		ref = ""
	}

	date := strings.TrimSpace(req.PaymentDate)
	if date == "" {
		date = nowFunc().Format("2006-01-02")
	}
	year := strings.TrimSpace(req.AcademicYear)
	if year == "" {
		year = DefaultAcademicYear(nowFunc())
	}

	shares := splitAmount(total, len(components))
	rows := make([]models.Payment, len(components))
	for i, component := range components {
		componentID := component.ID
		rows[i] = models.Payment{
			StudentID:      student.ID,
			FeeComponentID: &componentID,
			Amount:         shares[i],
			PaymentMethod:  req.Method,
			PaymentDate:    date,
			AcademicYear:   year,
			TransactionRef: ref,
		}
	}

	return &Plan{Student: student, Components: components, Total: total, Rows: rows}, nil
}

func findStudent(students []models.Student, id int64) (models.Student, bool) {
	for _, s := range students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

func resolveComponents(sel Selection, student models.Student, catalog []models.FeeComponent) ([]models.FeeComponent, error) {
	if sel.AllForClass() {
		var components []models.FeeComponent
		for _, c := range catalog {
			if c.Class == student.Class {
				components = append(components, c)
			}
		}
		if len(components) == 0 {
			return nil, &ValidationError{Kind: NoComponents, Message: fmt.Sprintf("no fee components defined for %s", student.Class)}
		}
		return components, nil
	}

	for _, c := range catalog {
		if c.ID == sel.ComponentID() {
			if c.Class != student.Class {
				return nil, &ValidationError{Kind: InvalidComponent, Message: fmt.Sprintf("fee component %d belongs to %s, not %s", c.ID, c.Class, student.Class)}
			}
			return []models.FeeComponent{c}, nil
		}
	}
	return nil, &ValidationError{Kind: InvalidComponent, Message: fmt.Sprintf("fee component %d not found", sel.ComponentID())}
}

func parseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || amount <= 0 {
		return 0, &ValidationError{Kind: InvalidAmount, Message: fmt.Sprintf("amount %q is not a positive whole number", raw)}
	}
	return amount, nil
}

// splitAmount divides total across n rows. Every row gets total/n and the
// last row absorbs the remainder, so the shares always sum to total.
func splitAmount(total int64, n int) []int64 {
	shares := make([]int64, n)
	per := total / int64(n)
	for i := range shares {
		shares[i] = per
	}
	shares[n-1] = total - per*int64(n-1)
	return shares
}
