package database

import (
	"database/sql"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// Store adapts the package-level query functions to the read interfaces the
// reminder engine consumes, so the engine never touches *sql.DB directly.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) ActiveStudents() ([]*models.Student, error) {
	return GetActiveStudents(s.DB)
}

func (s *Store) StudentByID(id string) (*models.Student, error) {
	return GetStudentByID(s.DB, id)
}

func (s *Store) ActiveStudentCount() (int, error) {
	return CountActiveStudents(s.DB)
}

func (s *Store) PaidFeesForPeriod(month, year int) ([]*models.Fee, error) {
	return GetPaidFeesForPeriod(s.DB, month, year)
}
