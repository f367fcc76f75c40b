package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// SetupFeesRoutes sets up the fees routes. Static paths are registered
// before /:id so they are not shadowed.
func SetupFeesRoutes(app *fiber.App, engine *services.Engine) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFeesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, config.GetDB(), engine)
	})

	api.Get("/monthly", func(c *fiber.Ctx) error {
		return GetMonthlyFeesAPI(c, config.GetDB())
	})

	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeByIDAPI(c, config.GetDB())
	})
}
