package services

import (
	"log"
	"time"
)

// reminderDays are the calendar days (within the 1st-10th window) on which
// the daily sweep logs pending reminders.
var reminderDays = map[int]bool{1: true, 3: true, 5: true, 7: true, 9: true}

// isReminderDay reports whether the sweep should run for the given date.
func isReminderDay(t time.Time) bool {
	day := t.Day()
	if day < 1 || day > 10 {
		return false
	}
	return reminderDays[day]
}

// StartScheduler starts the background task scheduler. Once a day at 10:00
// it re-runs the overdue computation for the current period and logs the
// reminder links for manual sending. It never sends anything itself and
// never writes to the database.
func StartScheduler(engine *Engine) {
	go func() {
		log.Println("Scheduler started...")
		log.Println("Fee reminders are logged daily at 10:00 on days 1, 3, 5, 7 and 9 for manual sending")

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 10:00 AM
			if now.Hour() == 10 && now.Minute() == 0 {
				logPendingReminders(engine, now)
			}
		}
	}()
}

// logPendingReminders writes the overdue listing for the current period to
// the operational log. Errors are logged and swallowed; the scheduler keeps
// running regardless.
func logPendingReminders(engine *Engine, now time.Time) {
	if !isReminderDay(now) {
		return
	}

	month, year := int(now.Month()), now.Year()
	log.Printf("=== Fee Reminder Day: %d/%d/%d ===", now.Day(), month, year)
	log.Println("Checking for pending fees...")

	reminders, err := engine.PendingReminders(month, year, now)
	if err != nil {
		log.Printf("Error in fee reminder job: %v", err)
		return
	}

	if len(reminders) == 0 {
		log.Println("No overdue fees found for this month.")
		return
	}

	log.Printf("Found %d overdue students:", len(reminders))
	for i, r := range reminders {
		log.Printf("%d. %s (%s)", i+1, r.StudentName, r.Phone)
		log.Printf("   Amount: PKR%v", r.Amount)
		log.Printf("   Due Date: %dth of each month", r.FeeDueDay)
		log.Printf("   WhatsApp Link: %s", r.Link)
	}
	log.Println("Please send reminders manually using the links above.")
}
