package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
)

// SetupReportsRoutes sets up the collection reporting routes.
func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/classwise", GetClasswiseCollectionAPI)
	api.Get("/components", GetComponentCollectionAPI)
	api.Get("/monthly", GetMonthlyTrendAPI)
}
