package auth

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/owaisdotcom/madarsa-apiv2/app/config"
	"github.com/owaisdotcom/madarsa-apiv2/app/database"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// RegisterAPI creates an administrator account and returns a token.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if len(req.Username) < 3 {
		return fiber.NewError(fiber.StatusBadRequest, "Username must be at least 3 characters")
	}
	if !strings.Contains(req.Email, "@") {
		return fiber.NewError(fiber.StatusBadRequest, "Please enter a valid email")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{Username: req.Username, Email: req.Email, Password: hashed}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if errors.Is(err, database.ErrUserExists) {
			return fiber.NewError(fiber.StatusBadRequest, "User already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := GenerateJWT(user.ID, user.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user":  user,
		},
	})
}

// LoginAPI checks credentials and returns a token.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := GenerateJWT(user.ID, user.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user":  user,
		},
	})
}

// MeAPI returns the account behind the presented token.
func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}
