package whatsapp

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
	"github.com/owaisdotcom/madarsa-apiv2/app/whatsapp"
)

// currentPeriod resolves the month/year query params, defaulting to now.
func currentPeriod(c *fiber.Ctx) (int, int) {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	return month, year
}

// GetAnnouncementLinksAPI generates announcement links for all active
// students, or one group link, and logs the broadcast.
func GetAnnouncementLinksAPI(c *fiber.Ctx, db *sql.DB, engine *services.Engine) error {
	type AnnouncementRequest struct {
		Type     models.AnnouncementType `json:"type"`
		Message  string                  `json:"message"`
		UseGroup bool                    `json:"useGroup"`
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Type == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Type and message are required")
	}
	switch req.Type {
	case models.AnnouncementHoliday, models.AnnouncementTimingChange, models.AnnouncementGeneral:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid announcement type")
	}

	result, err := engine.AnnouncementLinks(req.Type, req.Message, req.UseGroup)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveStudents) {
			return fiber.NewError(fiber.StatusBadRequest, "No active students found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate announcement links")
	}

	var recipientIDs []string
	if !result.IsGroup {
		for _, link := range result.Links {
			recipientIDs = append(recipientIDs, link.StudentID)
		}
	}
	announcement := &models.Announcement{Type: req.Type, Message: req.Message}
	if err := database.CreateAnnouncement(db, announcement, recipientIDs); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save announcement")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetReminderLinkAPI builds the individual reminder link for one student.
func GetReminderLinkAPI(c *fiber.Ctx, engine *services.Engine) error {
	month, year := currentPeriod(c)

	reminder, err := engine.ReminderLinkForStudent(c.Params("studentId"), month, year)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrStudentNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		case errors.Is(err, services.ErrInvalidPeriod):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month or year")
		case errors.Is(err, whatsapp.ErrNoLink):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate reminder link")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reminder,
	})
}

// GetPendingRemindersAPI lists the overdue students for a period with their
// reminder links.
func GetPendingRemindersAPI(c *fiber.Ctx, engine *services.Engine) error {
	month, year := currentPeriod(c)

	reminders, err := engine.PendingReminders(month, year, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month or year")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pending reminders")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"count":     len(reminders),
			"reminders": reminders,
		},
	})
}

// GetGroupReminderLinkAPI builds a single broadcast link covering every
// overdue student for the period.
func GetGroupReminderLinkAPI(c *fiber.Ctx, engine *services.Engine) error {
	month, year := currentPeriod(c)

	group, err := engine.GroupReminderLink(month, year, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPeriod):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month or year")
		case errors.Is(err, services.ErrNoOverdueStudents):
			return fiber.NewError(fiber.StatusBadRequest, "No overdue students found")
		case errors.Is(err, whatsapp.ErrNoLink):
			return fiber.NewError(fiber.StatusBadRequest, "Group link is not configured")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate group reminder link")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

// GetAnnouncementsAPI returns the latest broadcast history.
func GetAnnouncementsAPI(c *fiber.Ctx, db *sql.DB) error {
	announcements, err := database.GetAnnouncements(db, 50)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch announcements")
	}
	if announcements == nil {
		announcements = []*models.Announcement{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(announcements),
		"data":    announcements,
	})
}
