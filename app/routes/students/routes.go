package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
)

// SetupStudentsRoutes sets up the student directory routes.
func SetupStudentsRoutes(app *fiber.App) {
	pages := app.Group("/students")
	pages.Use(auth.AuthMiddleware)

	pages.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title":       "Students - Scholar Fee Nexus",
			"CurrentPage": "students",
		})
	})

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
