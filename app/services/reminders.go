// Package services holds the reminder engine: the logic that combines the
// roster, the fee ledger and the calendar into pending lists, overdue
// reminders and dashboard aggregates.
package services

import (
	"errors"
	"time"

	"github.com/owaisdotcom/madarsa-apiv2/app/dates"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/whatsapp"
)

// ErrInvalidPeriod is returned when a requested billing period is malformed.
var ErrInvalidPeriod = errors.New("invalid month or year")

// ErrNoOverdueStudents is returned when a group reminder is requested but
// nobody is overdue for the period.
var ErrNoOverdueStudents = errors.New("no overdue students found")

// StudentSource is the roster view the engine needs.
type StudentSource interface {
	ActiveStudents() ([]*models.Student, error)
	StudentByID(id string) (*models.Student, error)
	ActiveStudentCount() (int, error)
}

// FeeSource is the ledger view the engine needs.
type FeeSource interface {
	PaidFeesForPeriod(month, year int) ([]*models.Fee, error)
}

// Engine derives fee status from the roster and the ledger. It holds no
// state of its own, so one instance is shared across requests and the
// scheduler.
type Engine struct {
	students    StudentSource
	fees        FeeSource
	groupInvite string
}

// NewEngine wires an engine to its data sources. groupInvite is the WhatsApp
// group invite code or URL used for broadcast links.
func NewEngine(students StudentSource, fees FeeSource, groupInvite string) *Engine {
	return &Engine{students: students, fees: fees, groupInvite: groupInvite}
}

// Reminder is one overdue student with a ready-to-send link.
type Reminder struct {
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Phone       string  `json:"phone"`
	Amount      float64 `json:"amount"`
	FeeDueDay   int     `json:"feeDueDate"`
	Overdue     bool    `json:"overdue"`
	Link        string  `json:"link"`
}

// GroupReminder is a single broadcast link covering every overdue student.
type GroupReminder struct {
	Link         string `json:"link"`
	IsGroup      bool   `json:"isGroup"`
	OverdueCount int    `json:"overdueCount"`
}

// PendingStudents returns the active students with no paid record for the
// period, in roster order.
func (e *Engine) PendingStudents(month, year int) ([]*models.Student, error) {
	if !dates.ValidPeriod(month, year) {
		return nil, ErrInvalidPeriod
	}

	students, err := e.students.ActiveStudents()
	if err != nil {
		return nil, err
	}
	paid, err := e.fees.PaidFeesForPeriod(month, year)
	if err != nil {
		return nil, err
	}

	paidIDs := make(map[string]struct{}, len(paid))
	for _, f := range paid {
		paidIDs[f.StudentID] = struct{}{}
	}

	var pending []*models.Student
	for _, s := range students {
		if _, ok := paidIDs[s.ID]; !ok {
			pending = append(pending, s)
		}
	}
	return pending, nil
}

// OverdueStudents narrows the pending set to students whose due day has
// passed as of today.
func (e *Engine) OverdueStudents(month, year int, today time.Time) ([]*models.Student, error) {
	pending, err := e.PendingStudents(month, year)
	if err != nil {
		return nil, err
	}

	var overdue []*models.Student
	for _, s := range pending {
		if dates.IsOverdue(s.DueDay(), month, year, today) {
			overdue = append(overdue, s)
		}
	}
	return overdue, nil
}

// PendingReminders renders a reminder message and link for every overdue
// student. Students whose phone number cannot be turned into a link are
// skipped; one bad number never aborts the batch. Pending students who are
// not yet overdue are excluded entirely.
func (e *Engine) PendingReminders(month, year int, today time.Time) ([]Reminder, error) {
	overdue, err := e.OverdueStudents(month, year, today)
	if err != nil {
		return nil, err
	}

	reminders := []Reminder{}
	for _, s := range overdue {
		message := whatsapp.FeeReminderMessage(s.FullName, month, year, s.MonthlyFee)
		link, err := whatsapp.Link(s.Phone, message)
		if err != nil {
			continue
		}
		reminders = append(reminders, Reminder{
			StudentID:   s.ID,
			StudentName: s.FullName,
			Phone:       s.Phone,
			Amount:      s.MonthlyFee,
			FeeDueDay:   s.DueDay(),
			Overdue:     true,
			Link:        link,
		})
	}
	return reminders, nil
}

// GroupReminderLink folds every overdue student into one broadcast message
// and wraps it in the group invite link.
func (e *Engine) GroupReminderLink(month, year int, today time.Time) (*GroupReminder, error) {
	reminders, err := e.PendingReminders(month, year, today)
	if err != nil {
		return nil, err
	}
	if len(reminders) == 0 {
		return nil, ErrNoOverdueStudents
	}

	entries := make([]whatsapp.GroupReminderEntry, len(reminders))
	for i, r := range reminders {
		entries[i] = whatsapp.GroupReminderEntry{
			StudentName: r.StudentName,
			Amount:      r.Amount,
			DueDay:      r.FeeDueDay,
		}
	}

	message := whatsapp.GroupReminderMessage(entries, month, year)
	link, err := whatsapp.GroupLink(e.groupInvite, message)
	if err != nil {
		return nil, err
	}

	return &GroupReminder{
		Link:         link,
		IsGroup:      true,
		OverdueCount: len(reminders),
	}, nil
}

// ReminderLinkForStudent builds the individual reminder link for one
// student, using the student's configured monthly fee as the amount.
func (e *Engine) ReminderLinkForStudent(studentID string, month, year int) (*Reminder, error) {
	if !dates.ValidPeriod(month, year) {
		return nil, ErrInvalidPeriod
	}

	s, err := e.students.StudentByID(studentID)
	if err != nil {
		return nil, err
	}

	message := whatsapp.FeeReminderMessage(s.FullName, month, year, s.MonthlyFee)
	link, err := whatsapp.Link(s.Phone, message)
	if err != nil {
		return nil, err
	}

	return &Reminder{
		StudentID:   s.ID,
		StudentName: s.FullName,
		Phone:       s.Phone,
		Amount:      s.MonthlyFee,
		FeeDueDay:   s.DueDay(),
		Link:        link,
	}, nil
}

// DashboardStats aggregates the current and previous billing periods as of
// now. Only the current month carries a pending count; the previous month
// never has (the dashboard has always shown it that way).
func (e *Engine) DashboardStats(now time.Time) (*models.DashboardStats, error) {
	curMonth, curYear := int(now.Month()), now.Year()
	prevMonth, prevYear := dates.PreviousMonth(curMonth, curYear)

	totalStudents, err := e.students.ActiveStudentCount()
	if err != nil {
		return nil, err
	}

	curFees, err := e.fees.PaidFeesForPeriod(curMonth, curYear)
	if err != nil {
		return nil, err
	}
	prevFees, err := e.fees.PaidFeesForPeriod(prevMonth, prevYear)
	if err != nil {
		return nil, err
	}

	pending, err := e.PendingStudents(curMonth, curYear)
	if err != nil {
		return nil, err
	}
	pendingCount := len(pending)

	return &models.DashboardStats{
		TotalStudents: totalStudents,
		CurrentMonth: models.MonthSummary{
			Month:        curMonth,
			Year:         curYear,
			TotalFees:    sumAmounts(curFees),
			PaidCount:    len(curFees),
			PendingCount: &pendingCount,
		},
		PreviousMonth: models.MonthSummary{
			Month:     prevMonth,
			Year:      prevYear,
			TotalFees: sumAmounts(prevFees),
			PaidCount: len(prevFees),
		},
	}, nil
}

// MonthlyBreakdown aggregates the trailing periods ending at now, returned
// oldest first.
func (e *Engine) MonthlyBreakdown(months int, now time.Time) ([]models.MonthlyBreakdownEntry, error) {
	if months <= 0 {
		months = 6
	}
	curMonth, curYear := int(now.Month()), now.Year()

	entries := make([]models.MonthlyBreakdownEntry, 0, months)
	for i := 0; i < months; i++ {
		month, year := dates.ShiftMonthsBack(curMonth, curYear, i)
		fees, err := e.fees.PaidFeesForPeriod(month, year)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.MonthlyBreakdownEntry{
			Month:       month,
			Year:        year,
			MonthName:   dates.MonthName(month),
			TotalAmount: sumAmounts(fees),
			PaidCount:   len(fees),
		})
	}

	// Generated newest first; callers chart oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func sumAmounts(fees []*models.Fee) float64 {
	var total float64
	for _, f := range fees {
		total += f.Amount
	}
	return total
}
