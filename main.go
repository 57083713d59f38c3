package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Coder-Madaan/scholar-fee-nexus/app/config"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/database"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/auth"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/feecomponents"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/payments"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/reports"
	"github.com/Coder-Madaan/scholar-fee-nexus/app/routes/students"
)

// customErrorHandler renders error pages for web requests and JSON for the
// API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("errors/error", fiber.Map{
		"Title":        "Error - Scholar Fee Nexus",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	config.Init()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./views", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})
	app.Get("/dashboard", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - Scholar Fee Nexus",
			"CurrentPage": "dashboard",
		})
	})

	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	feecomponents.SetupFeeComponentsRoutes(app)
	payments.SetupPaymentsRoutes(app)
	reports.SetupReportsRoutes(app)

	log.Printf("Starting server on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
