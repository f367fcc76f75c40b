package whatsapp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owaisdotcom/madarsa-apiv2/app/dates"
	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// GroupReminderEntry is one overdue student line in the group reminder.
type GroupReminderEntry struct {
	StudentName string
	Amount      float64
	DueDay      int
}

// formatAmount renders an amount without trailing zeros (500 not 500.00),
// matching how amounts have always appeared in sent messages.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// FeeReminderMessage renders the fee reminder greeting for one student.
func FeeReminderMessage(studentName string, month, year int, amount float64) string {
	return fmt.Sprintf("Assalamu Alaikum %s,\n\n"+
		"This is a reminder that your Madarsa fee for %s %d is pending.\n"+
		"Amount: PKR%s\n"+
		"Please make the payment at your earliest convenience.\n\n"+
		"JazakAllah Khair",
		studentName, dates.MonthName(month), year, formatAmount(amount))
}

// PaymentConfirmationMessage renders the confirmation sent after a payment
// is recorded.
func PaymentConfirmationMessage(studentName string, amount float64, month, year int) string {
	return fmt.Sprintf("Assalamu Alaikum %s,\n\n"+
		"Your Madarsa fee payment has been confirmed.\n"+
		"Amount: PKR%s\n"+
		"Month: %s %d\n"+
		"Thank you for your payment.\n\n"+
		"JazakAllah Khair",
		studentName, formatAmount(amount), dates.MonthName(month), year)
}

// AnnouncementMessage prefixes a broadcast message with a bold header for
// its type.
func AnnouncementMessage(announcementType models.AnnouncementType, message string) string {
	switch announcementType {
	case models.AnnouncementHoliday:
		return "*Holiday Announcement*\n\n" + message
	case models.AnnouncementTimingChange:
		return "*Timing Change Announcement*\n\n" + message
	default:
		return "*Announcement*\n\n" + message
	}
}

// GroupReminderMessage folds every overdue student into a single broadcast
// listing names, amounts and due days.
func GroupReminderMessage(entries []GroupReminderEntry, month, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Fee Reminder - %s %d*\n\n", dates.MonthName(month), year)
	b.WriteString("Assalamu Alaikum,\n\n")
	b.WriteString("This is a reminder for the following students with pending fees:\n\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.StudentName)
		fmt.Fprintf(&b, "   Amount: PKR%s\n", formatAmount(e.Amount))
		fmt.Fprintf(&b, "   Due Date: %dth\n\n", e.DueDay)
	}

	b.WriteString("Please make the payment at your earliest convenience.\n\n")
	b.WriteString("JazakAllah Khair")
	return b.String()
}
