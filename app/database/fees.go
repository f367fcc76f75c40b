package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// FeeFilters narrows a ledger listing. Zero values mean "no filter".
type FeeFilters struct {
	StudentID string
	Month     int
	Year      int
	Status    models.FeeStatus
}

const feeSelect = `SELECT f.id, f.student_id, f.amount, f.month, f.year,
	f.paid_date, f.status, COALESCE(f.payment_method, ''), COALESCE(f.notes, ''),
	f.created_at, f.updated_at, s.full_name, s.phone
	FROM fees f
	JOIN students s ON f.student_id = s.id`

func scanFeeRows(rows *sql.Rows) ([]*models.Fee, error) {
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		f := &models.Fee{}
		err := rows.Scan(
			&f.ID, &f.StudentID, &f.Amount, &f.Month, &f.Year,
			&f.PaidDate, &f.Status, &f.PaymentMethod, &f.Notes,
			&f.CreatedAt, &f.UpdatedAt, &f.StudentName, &f.StudentPhone,
		)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// CreateFee appends a paid record to the ledger in a single atomic insert.
// The composite unique index on (student_id, month, year) rejects a second
// payment for the same period; that violation comes back as
// ErrDuplicatePayment. There is deliberately no prior existence check, so
// concurrent inserts for the same period cannot race past each other.
func CreateFee(db *sql.DB, fee *models.Fee) error {
	fee.ID = uuid.NewString()
	fee.Status = models.FeeStatusPaid

	query := `INSERT INTO fees (id, student_id, amount, month, year, paid_date,
			  status, payment_method, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7, $8, NOW(), NOW())
			  RETURNING paid_date, created_at, updated_at`

	err := db.QueryRow(query, fee.ID, fee.StudentID, fee.Amount, fee.Month,
		fee.Year, fee.Status, fee.PaymentMethod, fee.Notes).
		Scan(&fee.PaidDate, &fee.CreatedAt, &fee.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicatePayment
	}
	return err
}

// GetFees lists ledger records, most recent period first.
func GetFees(db *sql.DB, filters FeeFilters) ([]*models.Fee, error) {
	query := feeSelect + ` WHERE 1=1`
	var args []interface{}

	if filters.StudentID != "" {
		args = append(args, filters.StudentID)
		query += fmt.Sprintf(` AND f.student_id = $%d`, len(args))
	}
	if filters.Month != 0 {
		args = append(args, filters.Month)
		query += fmt.Sprintf(` AND f.month = $%d`, len(args))
	}
	if filters.Year != 0 {
		args = append(args, filters.Year)
		query += fmt.Sprintf(` AND f.year = $%d`, len(args))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(` AND f.status = $%d`, len(args))
	}
	query += ` ORDER BY f.year DESC, f.month DESC, f.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanFeeRows(rows)
}

// GetFeeByID returns one ledger record or ErrFeeNotFound.
func GetFeeByID(db *sql.DB, id string) (*models.Fee, error) {
	f := &models.Fee{}
	err := db.QueryRow(feeSelect+` WHERE f.id = $1`, id).Scan(
		&f.ID, &f.StudentID, &f.Amount, &f.Month, &f.Year,
		&f.PaidDate, &f.Status, &f.PaymentMethod, &f.Notes,
		&f.CreatedAt, &f.UpdatedAt, &f.StudentName, &f.StudentPhone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeesByStudent returns a student's full payment history, most recent
// period first.
func GetFeesByStudent(db *sql.DB, studentID string) ([]*models.Fee, error) {
	return GetFees(db, FeeFilters{StudentID: studentID})
}

// GetPaidFeesForPeriod returns every paid record for one billing period.
func GetPaidFeesForPeriod(db *sql.DB, month, year int) ([]*models.Fee, error) {
	return GetFees(db, FeeFilters{Month: month, Year: year, Status: models.FeeStatusPaid})
}

// TotalPaid sums the amounts of a set of fee records.
func TotalPaid(fees []*models.Fee) float64 {
	var total float64
	for _, f := range fees {
		total += f.Amount
	}
	return total
}
