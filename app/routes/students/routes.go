package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes.
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeactivateStudentAPI(c, config.GetDB())
	})

	api.Patch("/:id/activate", func(c *fiber.Ctx) error {
		return SetStudentActiveAPI(c, config.GetDB(), true)
	})

	api.Patch("/:id/deactivate", func(c *fiber.Ctx) error {
		return SetStudentActiveAPI(c, config.GetDB(), false)
	})
}
