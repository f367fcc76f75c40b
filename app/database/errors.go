package database

import "errors"

var (
	// ErrDuplicatePayment means a paid fee record already exists for the
	// same (student, month, year).
	ErrDuplicatePayment = errors.New("fee already paid for this month")

	// ErrStudentNotFound means the referenced student id does not resolve.
	ErrStudentNotFound = errors.New("student not found")

	// ErrFeeNotFound means the referenced fee record does not resolve.
	ErrFeeNotFound = errors.New("fee record not found")

	// ErrDuplicatePhone means another student already has the phone number.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrUserExists means the username or email is already taken.
	ErrUserExists = errors.New("user already exists")
)
