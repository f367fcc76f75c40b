package students

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})

	app.Get("/api/students", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})
	app.Get("/api/students/:id", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, db)
	})
	app.Post("/api/students", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})
	return app
}

func TestGetStudentsAPI(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM students`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "flat_name", "flat_no", "monthly_fee",
			"fee_due_day", "is_active", "created_at", "updated_at",
		}).AddRow("s1", "Ahmed Khan", "+923001234567", "Ramsha Avenue", "A-101",
			500.0, 10, true, now, now))

	app := newTestApp(db)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/students", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, 1, payload.Count)
	assert.Len(t, payload.Data, 1)
}

func TestGetStudentAPINotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM students WHERE id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "flat_name", "flat_no", "monthly_fee",
			"fee_due_day", "is_active", "created_at", "updated_at",
		}))

	app := newTestApp(db)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/students/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "Student not found")
}

func TestCreateStudentAPIValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	// Missing phone number.
	req := httptest.NewRequest("POST", "/api/students",
		strings.NewReader(`{"full_name":"Ahmed Khan","flat_name":"A","flat_no":"1","monthly_fee":500,"fee_due_day":10}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Due day out of range.
	req = httptest.NewRequest("POST", "/api/students",
		strings.NewReader(`{"full_name":"Ahmed Khan","phone":"+923001234567","flat_name":"A","flat_no":"1","monthly_fee":500,"fee_due_day":32}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
