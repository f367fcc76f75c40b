package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

const studentColumns = `id, full_name, phone, flat_name, flat_no, monthly_fee,
	fee_due_day, is_active, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.FullName, &s.Phone, &s.FlatName, &s.FlatNo,
		&s.MonthlyFee, &s.FeeDueDay, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudents returns students, newest first, optionally filtered by a
// search term (name, phone or flat) and by active state.
func GetStudents(db *sql.DB, search string, isActive *bool) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	var args []interface{}

	if isActive != nil {
		args = append(args, *isActive)
		query += ` AND is_active = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (full_name ILIKE $%d OR phone ILIKE $%d
			OR flat_name ILIKE $%d OR flat_no ILIKE $%d)`, n, n, n, n)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetActiveStudents returns the billable roster.
func GetActiveStudents(db *sql.DB) ([]*models.Student, error) {
	active := true
	return GetStudents(db, "", &active)
}

// GetStudentByID returns one student or ErrStudentNotFound.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	s, err := scanStudent(db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a new active student. A phone collision surfaces as
// ErrDuplicatePhone.
func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = uuid.NewString()
	s.IsActive = true

	query := `INSERT INTO students (id, full_name, phone, flat_name, flat_no,
			  monthly_fee, fee_due_day, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, s.ID, s.FullName, s.Phone, s.FlatName, s.FlatNo,
		s.MonthlyFee, s.FeeDueDay).Scan(&s.CreatedAt, &s.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicatePhone
	}
	return err
}

// UpdateStudent overwrites the mutable fields of a student.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET full_name = $1, phone = $2, flat_name = $3,
			  flat_no = $4, monthly_fee = $5, fee_due_day = $6, is_active = $7,
			  updated_at = NOW()
			  WHERE id = $8
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, s.FullName, s.Phone, s.FlatName, s.FlatNo,
		s.MonthlyFee, s.FeeDueDay, s.IsActive, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStudentNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicatePhone
	}
	return err
}

// SetStudentActive flips the active flag. Deactivation is the only form of
// delete the roster supports.
func SetStudentActive(db *sql.DB, id string, active bool) error {
	result, err := db.Exec(`UPDATE students SET is_active = $1, updated_at = NOW() WHERE id = $2`,
		active, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// CountActiveStudents returns the size of the billable roster.
func CountActiveStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&count)
	return count, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
