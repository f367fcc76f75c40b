package whatsapp

import (
	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// SetupWhatsAppRoutes sets up the WhatsApp link routes.
func SetupWhatsAppRoutes(app *fiber.App, engine *services.Engine) {
	api := app.Group("/api/whatsapp")
	api.Use(auth.AuthMiddleware)

	api.Post("/get-announcement-links", func(c *fiber.Ctx) error {
		return GetAnnouncementLinksAPI(c, config.GetDB(), engine)
	})

	api.Get("/get-reminder-link/:studentId", func(c *fiber.Ctx) error {
		return GetReminderLinkAPI(c, engine)
	})

	api.Get("/pending-reminders", func(c *fiber.Ctx) error {
		return GetPendingRemindersAPI(c, engine)
	})

	api.Get("/group-reminder-link", func(c *fiber.Ctx) error {
		return GetGroupReminderLinkAPI(c, engine)
	})

	api.Get("/announcements", func(c *fiber.Ctx) error {
		return GetAnnouncementsAPI(c, config.GetDB())
	})
}
