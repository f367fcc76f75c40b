// Package dates holds the month arithmetic used by the fee ledger and the
// reminder engine. Periods are plain (month, year) pairs, month 1-12.
package dates

import "time"

// MinYear is the earliest year the system accepts for a billing period.
const MinYear = 2020

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a month (1-12), or "" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ValidPeriod reports whether (month, year) is a well-formed billing period.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= MinYear
}

// PreviousMonth returns the period immediately before (month, year),
// wrapping December of the previous year when month is January.
func PreviousMonth(month, year int) (int, int) {
	month--
	if month == 0 {
		month = 12
		year--
	}
	return month, year
}

// ShiftMonthsBack returns the period n months before (month, year).
// n must be >= 0; n == 0 returns the period unchanged.
func ShiftMonthsBack(month, year, n int) (int, int) {
	month -= n
	for month <= 0 {
		month += 12
		year--
	}
	return month, year
}

// IsOverdue reports whether an unpaid fee for (targetMonth, targetYear) is
// overdue as of today. A past period is always overdue; the current period
// becomes overdue once today's day of month is past dueDay; a future period
// is never overdue. The day comparison is purely numeric: a dueDay of 31 in
// a 30-day month is never reached within that month, matching how the
// ledger has always behaved.
func IsOverdue(dueDay, targetMonth, targetYear int, today time.Time) bool {
	curMonth := int(today.Month())
	curYear := today.Year()

	if targetYear < curYear || (targetYear == curYear && targetMonth < curMonth) {
		return true
	}
	if targetYear == curYear && targetMonth == curMonth {
		return today.Day() > dueDay
	}
	return false
}
