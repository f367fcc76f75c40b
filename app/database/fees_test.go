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

func TestCreateFee(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fees")).
		WithArgs(sqlmock.AnyArg(), "student-1", 500.0, 3, 2024,
			models.FeeStatusPaid, "cash", "").
		WillReturnRows(sqlmock.NewRows([]string{"paid_date", "created_at", "updated_at"}).
			AddRow(now, now, now))

	fee := &models.Fee{
		StudentID:     "student-1",
		Amount:        500,
		Month:         3,
		Year:          2024,
		PaymentMethod: "cash",
	}
	err = CreateFee(db, fee)
	require.NoError(t, err)

	assert.NotEmpty(t, fee.ID)
	assert.Equal(t, models.FeeStatusPaid, fee.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fees")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_fees_student_period"})

	fee := &models.Fee{StudentID: "student-1", Amount: 500, Month: 3, Year: 2024}
	err = CreateFee(db, fee)
	assert.ErrorIs(t, err, ErrDuplicatePayment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeDifferentMonthsSucceed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	returning := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"paid_date", "created_at", "updated_at"}).
			AddRow(now, now, now)
	}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fees")).WillReturnRows(returning())
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fees")).WillReturnRows(returning())

	require.NoError(t, CreateFee(db, &models.Fee{StudentID: "s", Amount: 500, Month: 3, Year: 2024}))
	require.NoError(t, CreateFee(db, &models.Fee{StudentID: "s", Amount: 500, Month: 4, Year: 2024}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func feeRows(fees ...*models.Fee) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "student_id", "amount", "month", "year", "paid_date", "status",
		"payment_method", "notes", "created_at", "updated_at", "full_name", "phone",
	})
	now := time.Now()
	for _, f := range fees {
		rows.AddRow(f.ID, f.StudentID, f.Amount, f.Month, f.Year, now,
			f.Status, f.PaymentMethod, f.Notes, now, now, f.StudentName, f.StudentPhone)
	}
	return rows
}

func TestGetPaidFeesForPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM fees f\s+JOIN students s`).
		WithArgs(3, 2024, models.FeeStatusPaid).
		WillReturnRows(feeRows(
			&models.Fee{ID: "f1", StudentID: "s1", Amount: 500, Month: 3, Year: 2024,
				Status: models.FeeStatusPaid, StudentName: "Ahmed", StudentPhone: "+92300"},
		))

	fees, err := GetPaidFeesForPeriod(db, 3, 2024)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "s1", fees[0].StudentID)
	assert.Equal(t, "Ahmed", fees[0].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM fees f`).
		WithArgs("missing").
		WillReturnRows(feeRows())

	_, err = GetFeeByID(db, "missing")
	assert.ErrorIs(t, err, ErrFeeNotFound)
}

func TestTotalPaid(t *testing.T) {
	fees := []*models.Fee{
		{Amount: 500}, {Amount: 300}, {Amount: 250.5},
	}
	assert.Equal(t, 1050.5, TotalPaid(fees))
	assert.Equal(t, 0.0, TotalPaid(nil))
}
