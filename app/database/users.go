package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// CreateUser inserts an administrator account. The password must already be
// hashed by the caller.
func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, username, email, password, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING created_at`

	err := db.QueryRow(query, user.ID, user.Username, user.Email, user.Password).
		Scan(&user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrUserExists
	}
	return err
}

// GetUserByEmail looks an account up for login.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, created_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID resolves the account behind a token.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, created_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
