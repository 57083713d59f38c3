package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payment tracking routes.
func SetupPaymentsRoutes(app *fiber.App) {
	pages := app.Group("/payments")
	pages.Use(auth.AuthMiddleware)

	pages.Get("/", func(c *fiber.Ctx) error {
		return c.Render("payments/index", fiber.Map{
			"Title":       "Payment Tracking - Scholar Fee Nexus",
			"CurrentPage": "payments",
		})
	})

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Post("/", RecordPaymentAPI)
	api.Put("/:id", UpdatePaymentAPI)
	api.Delete("/:id", DeletePaymentAPI)
}
