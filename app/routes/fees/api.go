package fees

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/dates"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/services"
)

// GetFeesAPI returns ledger records with optional filtering.
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.FeeFilters{
		StudentID: c.Query("studentId"),
		Month:     c.QueryInt("month", 0),
		Year:      c.QueryInt("year", 0),
		Status:    models.FeeStatus(c.Query("status")),
	}

	fees, err := database.GetFees(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	if fees == nil {
		fees = []*models.Fee{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(fees),
		"data":    fees,
	})
}

// GetFeeByIDAPI returns a specific fee record.
func GetFeeByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrFeeNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

// GetStudentFeesAPI returns a student's payment history.
func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	fees, err := database.GetFeesByStudent(db, c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	if fees == nil {
		fees = []*models.Fee{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(fees),
		"data":    fees,
	})
}

// CreateFeeAPI records a payment. The insert is atomic against the
// composite unique index, so a duplicate for the period is rejected without
// a racy pre-check. A confirmation link is attached best-effort: its
// failure never fails the payment.
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB, engine *services.Engine) error {
	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if fee.StudentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student ID is required")
	}
	if fee.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount cannot be negative")
	}
	if !dates.ValidPeriod(fee.Month, fee.Year) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month or year")
	}

	student, err := database.GetStudentByID(db, fee.StudentID)
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := database.CreateFee(db, &fee); err != nil {
		if errors.Is(err, database.ErrDuplicatePayment) {
			return fiber.NewError(fiber.StatusBadRequest, "Fee already paid for this month")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee")
	}
	fee.StudentName = student.FullName
	fee.StudentPhone = student.Phone

	var whatsappLink *string
	if link, err := engine.ConfirmationLinkForStudent(fee.StudentID, fee.Amount, fee.Month, fee.Year); err == nil {
		whatsappLink = &link
	} else {
		log.Printf("WhatsApp link generation failed: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"fee":          fee,
			"whatsappLink": whatsappLink,
		},
	})
}

// GetMonthlyFeesAPI returns the per-period collection summary.
func GetMonthlyFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month == 0 || year == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Month and year are required")
	}
	if !dates.ValidPeriod(month, year) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month or year")
	}

	fees, err := database.GetFees(db, database.FeeFilters{Month: month, Year: year})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	if fees == nil {
		fees = []*models.Fee{}
	}

	paidCount := 0
	for _, f := range fees {
		if f.Status == models.FeeStatusPaid {
			paidCount++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"month":       month,
			"year":        year,
			"totalAmount": database.TotalPaid(fees),
			"paidCount":   paidCount,
			"totalCount":  len(fees),
			"fees":        fees,
		},
	})
}
