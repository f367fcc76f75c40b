package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/auth"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/dashboard"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/fees"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/students"
	"github.com/owaisdotcom/madarsa-apiv2/app/routes/whatsapp"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// errorHandler maps every handler error onto the standard response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Reminder engine shared by the handlers and the scheduler
	store := database.NewStore(config.GetDB())
	engine := services.NewEngine(store, store, config.AppConfig.WhatsAppGroup)

	// Start background scheduler
	services.StartScheduler(engine)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Madarsa Management System API is running",
		})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	fees.SetupFeesRoutes(app, engine)
	dashboard.SetupDashboardRoutes(app, engine)
	whatsapp.SetupWhatsAppRoutes(app, engine)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
