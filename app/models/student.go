package models

import "time"

// Student represents an enrolled student. Students are never hard-deleted;
// deactivation flips IsActive so historical fee records stay attributable.
type Student struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	FlatName   string    `json:"flat_name"`
	FlatNo     string    `json:"flat_no"`
	MonthlyFee float64   `json:"monthly_fee"`
	FeeDueDay  int       `json:"fee_due_day"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DueDay returns the student's fee due day, falling back to the 10th for
// records created before the field became required.
func (s *Student) DueDay() int {
	if s.FeeDueDay < 1 {
		return 10
	}
	return s.FeeDueDay
}
