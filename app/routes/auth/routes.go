package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth routes.
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/register", RegisterAPI)
	api.Post("/login", LoginAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the bearer token and sets the user id on the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if authHeader := c.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Not authorized to access this route",
		})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Not authorized to access this route",
		})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	return c.Next()
}
