package models

import "time"

// FeeStatus is the recorded state of a fee payment.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// Fee represents a single monthly fee payment record. The ledger is
// append-only: at most one record exists per (student, month, year),
// enforced by a composite unique index.
type Fee struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	Amount        float64   `json:"amount"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	PaidDate      time.Time `json:"paid_date"`
	Status        FeeStatus `json:"status"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated by queries that join the roster.
	StudentName  string `json:"student_name,omitempty"`
	StudentPhone string `json:"student_phone,omitempty"`
}
