package payments

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/config"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/database"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/models"
	core "github.com/Coder-Madaan/scholar-fee-nexus/app/payments"
)

var validate = validator.New()

// RecordPaymentRequest is the JSON body of POST /api/payments. Either
// fee_component_id or select_all_for_class picks the components; amount is
// the total for the whole action.
type RecordPaymentRequest struct {
	StudentID         int64  `json:"student_id" validate:"required"`
	FeeComponentID    *int64 `json:"fee_component_id"`
	SelectAllForClass bool   `json:"select_all_for_class"`
	Amount            string `json:"amount" validate:"required"`
	PaymentMethod     string `json:"payment_method" validate:"required,oneof=cash cheque upi bank_transfer"`
	TransactionRef    string `json:"transaction_ref"`
	PaymentDate       string `json:"payment_date"`
	AcademicYear      string `json:"academic_year"`
}

func (r RecordPaymentRequest) toCore() core.Request {
	selection := core.SelectComponent(0)
	if r.SelectAllForClass {
		selection = core.SelectAllForClass()
	} else if r.FeeComponentID != nil {
		selection = core.SelectComponent(*r.FeeComponentID)
	}
	return core.Request{
		StudentID:      r.StudentID,
		Selection:      selection,
		Amount:         r.Amount,
		Method:         models.PaymentMethod(r.PaymentMethod),
		TransactionRef: r.TransactionRef,
		PaymentDate:    r.PaymentDate,
		AcademicYear:   r.AcademicYear,
	}
}

func newRecorder() *core.Recorder {
	store := database.NewStore(config.GetDB())
	return core.NewRecorder(store, store, store)
}

// RecordPaymentAPI runs the full allocation workflow: one request, N ledger
// rows sharing a receipt number.
func RecordPaymentAPI(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := newRecorder().Record(req.toCore())
	if err != nil {
		return paymentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"receipt_number": result.ReceiptNumber,
		"payments":       result.Payments,
		"message":        "Payment recorded successfully",
	})
}

// GetPaymentsAPI returns the enriched ledger, optionally filtered by
// student.
func GetPaymentsAPI(c *fiber.Ctx) error {
	studentID := int64(c.QueryInt("student_id", 0))
	details, err := database.GetPaymentsWithDetails(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    details,
		"count":   len(details),
	})
}

// UpdatePaymentAPI edits one ledger row, re-validating the method/reference
// rule.
func UpdatePaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := newRecorder().Update(int64(id), req.toCore())
	if err != nil {
		return paymentError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
		"message": "Payment updated successfully",
	})
}

// DeletePaymentAPI removes one ledger row; siblings of the same receipt stay.
func DeletePaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	if err := newRecorder().Delete(int64(id)); err != nil {
		return paymentError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment deleted successfully",
	})
}

// paymentError maps core errors onto HTTP responses: validation failures are
// 400 with the broken rule, a partial batch write is reported distinctly
// from a total failure.
func paymentError(c *fiber.Ctx, err error) error {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(400).JSON(fiber.Map{
			"error": vErr.Message,
			"kind":  string(vErr.Kind),
		})
	}

	var pErr *core.PartialBatchError
	if errors.As(err, &pErr) {
		rows := make([]fiber.Map, len(pErr.Result.Rows))
		for i, row := range pErr.Result.Rows {
			rows[i] = fiber.Map{"created": row.Err == nil}
			if row.Err != nil {
				rows[i]["error"] = row.Err.Error()
			}
		}
		return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
			"error":          pErr.Error(),
			"receipt_number": pErr.ReceiptNumber,
			"rows":           rows,
		})
	}

	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Failed to save payment"})
}
