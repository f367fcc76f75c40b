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

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "admin", "admin@madarsa.pk", "hashed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	user := &models.User{Username: "admin", Email: "admin@madarsa.pk", Password: "hashed"}
	require.NoError(t, CreateUser(db, user))
	assert.NotEmpty(t, user.ID)
}

func TestCreateUserDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err = CreateUser(db, &models.User{Username: "admin", Email: "admin@madarsa.pk"})
	assert.ErrorIs(t, err, ErrUserExists)
}
