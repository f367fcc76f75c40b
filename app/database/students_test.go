package database

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

func studentRows(students ...*models.Student) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "phone", "flat_name", "flat_no", "monthly_fee",
		"fee_due_day", "is_active", "created_at", "updated_at",
	})
	now := time.Now()
	for _, s := range students {
		rows.AddRow(s.ID, s.FullName, s.Phone, s.FlatName, s.FlatNo,
			s.MonthlyFee, s.FeeDueDay, s.IsActive, now, now)
	}
	return rows
}

func TestCreateStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs(sqlmock.AnyArg(), "Ahmed Khan", "+923001234567", "Ramsha Avenue", "A-101", 500.0, 10).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	s := &models.Student{
		FullName:   "Ahmed Khan",
		Phone:      "+923001234567",
		FlatName:   "Ramsha Avenue",
		FlatNo:     "A-101",
		MonthlyFee: 500,
		FeeDueDay:  10,
	}
	require.NoError(t, CreateStudent(db, s))
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentDuplicatePhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "students_phone_key"})

	err = CreateStudent(db, &models.Student{FullName: "X", Phone: "+923001234567"})
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM students WHERE id`).
		WithArgs("missing").
		WillReturnRows(studentRows())

	_, err = GetStudentByID(db, "missing")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGetActiveStudents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM students WHERE 1=1 AND is_active`).
		WithArgs(true).
		WillReturnRows(studentRows(
			&models.Student{ID: "a", FullName: "A", Phone: "+92300", IsActive: true},
			&models.Student{ID: "b", FullName: "B", Phone: "+92301", IsActive: true},
		))

	students, err := GetActiveStudents(db)
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStudentActiveNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET is_active")).
		WithArgs(false, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = SetStudentActive(db, "missing", false)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}
