package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth routes.
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Scholar Fee Nexus",
	})
}

// AuthMiddleware validates the JWT and sets user context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Cookie first, then Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return unauthorized(c)
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.Redirect("/auth/login")
}
