package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// GetDashboardStatsAPI returns the current and previous month summaries.
func GetDashboardStatsAPI(c *fiber.Ctx, engine *services.Engine) error {
	stats, err := engine.DashboardStats(time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetMonthlyFeesBreakdownAPI returns the trailing per-month aggregates for
// charts, oldest first.
func GetMonthlyFeesBreakdownAPI(c *fiber.Ctx, engine *services.Engine) error {
	months := c.QueryInt("months", 6)

	entries, err := engine.MonthlyBreakdown(months, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch monthly breakdown")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}
