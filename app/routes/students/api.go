package students

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/whatsapp"
)

// validateStudent checks the fields required to enroll or update a student.
func validateStudent(s *models.Student) error {
	if strings.TrimSpace(s.FullName) == "" {
		return errors.New("Full name is required")
	}
	if whatsapp.FormatPhone(s.Phone) == "" {
		return errors.New("Please enter a valid phone number")
	}
	if strings.TrimSpace(s.FlatName) == "" {
		return errors.New("Flat name is required")
	}
	if strings.TrimSpace(s.FlatNo) == "" {
		return errors.New("Flat number is required")
	}
	if s.MonthlyFee < 0 {
		return errors.New("Monthly fee cannot be negative")
	}
	if s.FeeDueDay < 1 || s.FeeDueDay > 31 {
		return errors.New("Due date must be between 1 and 31")
	}
	return nil
}

// GetStudentsAPI returns all students with optional search and active filters.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := c.Query("search")

	var isActive *bool
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		isActive = &active
	}

	students, err := database.GetStudents(db, search, isActive)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	if students == nil {
		students = []*models.Student{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(students),
		"data":    students,
	})
}

// GetStudentAPI returns a single student by id.
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// CreateStudentAPI enrolls a new student.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := database.CreateStudent(db, &student); err != nil {
		if errors.Is(err, database.ErrDuplicatePhone) {
			return fiber.NewError(fiber.StatusBadRequest, "Phone number already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// UpdateStudentAPI overwrites a student's details.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	existing, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	student := *existing
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = existing.ID
	if err := validateStudent(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := database.UpdateStudent(db, &student); err != nil {
		switch {
		case errors.Is(err, database.ErrStudentNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		case errors.Is(err, database.ErrDuplicatePhone):
			return fiber.NewError(fiber.StatusBadRequest, "Phone number already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// DeactivateStudentAPI is the DELETE handler; deletion is always logical so
// fee history stays attributable.
func DeactivateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SetStudentActive(db, c.Params("id"), false); err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{},
	})
}

// SetStudentActiveAPI flips the active flag explicitly.
func SetStudentActiveAPI(c *fiber.Ctx, db *sql.DB, active bool) error {
	if err := database.SetStudentActive(db, c.Params("id"), active); err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}
