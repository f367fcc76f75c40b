package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(app *fiber.App, engine *services.Engine) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, engine)
	})

	api.Get("/monthly-fees", func(c *fiber.Ctx) error {
		return GetMonthlyFeesBreakdownAPI(c, engine)
	})
}
