package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every statement
// is idempotent so this is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL UNIQUE,
			flat_name VARCHAR(100) NOT NULL,
			flat_no VARCHAR(20) NOT NULL,
			monthly_fee NUMERIC(10,2) NOT NULL CHECK (monthly_fee >= 0),
			fee_due_day INT NOT NULL CHECK (fee_due_day BETWEEN 1 AND 31),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_is_active ON students (is_active)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INT NOT NULL CHECK (year >= 2020),
			paid_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status VARCHAR(10) NOT NULL DEFAULT 'paid',
			payment_method VARCHAR(100),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// One payment per student per billing period. The insert path relies
		// on this index rather than a separate existence check, so two
		// concurrent payments for the same period cannot both land.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_fees_student_period
			ON fees (student_id, month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_period ON fees (month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_status ON fees (status)`,
		`CREATE TABLE IF NOT EXISTS announcements (
			id UUID PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS announcement_recipients (
			announcement_id UUID NOT NULL REFERENCES announcements(id),
			student_id UUID NOT NULL REFERENCES students(id),
			PRIMARY KEY (announcement_id, student_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
