package feecomponents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
)

// SetupFeeComponentsRoutes sets up the fee catalog routes.
func SetupFeeComponentsRoutes(app *fiber.App) {
	pages := app.Group("/fee-components")
	pages.Use(auth.AuthMiddleware)

	pages.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fee Components - Scholar Fee Nexus",
			"CurrentPage": "fee-components",
		})
	})

	api := app.Group("/api/fee-components")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetFeeComponentsAPI)
	api.Post("/", CreateFeeComponentAPI)
	api.Put("/:id", UpdateFeeComponentAPI)
	api.Delete("/:id", DeleteFeeComponentAPI)
}
