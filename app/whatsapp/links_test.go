package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "923001234567", FormatPhone("+92-300-1234567"))
	assert.Equal(t, "923001234567", FormatPhone("whatsapp:+923001234567"))
	assert.Equal(t, "923001234567", FormatPhone("92 300 1234567"))
	assert.Equal(t, "", FormatPhone(""))
	assert.Equal(t, "", FormatPhone("+-  "))
}

func TestLink(t *testing.T) {
	link, err := Link("+92-300-1234567", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/923001234567?text=hello%20there", link)
}

func TestLinkEmptyPhone(t *testing.T) {
	_, err := Link("", "hello")
	assert.ErrorIs(t, err, ErrNoLink)

	_, err = Link("abc", "hello")
	assert.ErrorIs(t, err, ErrNoLink)
}

func TestGroupLink(t *testing.T) {
	link, err := GroupLink("DORRpChWn6V3J7erUo102N", "hi")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.whatsapp.com/DORRpChWn6V3J7erUo102N?text=hi", link)

	// A full invite URL is accepted and the code extracted.
	link, err = GroupLink("https://chat.whatsapp.com/DORRpChWn6V3J7erUo102N?mode=r", "hi")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.whatsapp.com/DORRpChWn6V3J7erUo102N?text=hi", link)

	_, err = GroupLink("", "hi")
	assert.ErrorIs(t, err, ErrNoLink)
}

func TestEncodeURIComponent(t *testing.T) {
	// Browser-compatible encoding: %20 for spaces, !'()*~ untouched.
	assert.Equal(t, "a%20b", encodeURIComponent("a b"))
	assert.Equal(t, "*Hello*%0A%0AWorld!", encodeURIComponent("*Hello*\n\nWorld!"))
	assert.Equal(t, "100%25", encodeURIComponent("100%"))
	assert.Equal(t, "don't", encodeURIComponent("don't"))
	assert.Equal(t, "a%2Bb%3Dc", encodeURIComponent("a+b=c"))
}

func TestFeeReminderMessage(t *testing.T) {
	msg := FeeReminderMessage("Ahmed Khan", 3, 2024, 500)

	assert.True(t, strings.HasPrefix(msg, "Assalamu Alaikum Ahmed Khan,\n\n"))
	assert.Contains(t, msg, "your Madarsa fee for March 2024 is pending")
	assert.Contains(t, msg, "Amount: PKR500\n")
	assert.True(t, strings.HasSuffix(msg, "JazakAllah Khair"))
}

func TestPaymentConfirmationMessage(t *testing.T) {
	msg := PaymentConfirmationMessage("Ahmed Khan", 750.5, 1, 2024)

	assert.Contains(t, msg, "Your Madarsa fee payment has been confirmed.")
	assert.Contains(t, msg, "Amount: PKR750.5\n")
	assert.Contains(t, msg, "Month: January 2024\n")
}

func TestAnnouncementMessage(t *testing.T) {
	assert.Equal(t, "*Holiday Announcement*\n\nEid break",
		AnnouncementMessage(models.AnnouncementHoliday, "Eid break"))
	assert.Equal(t, "*Timing Change Announcement*\n\nNew timings",
		AnnouncementMessage(models.AnnouncementTimingChange, "New timings"))
	assert.Equal(t, "*Announcement*\n\nNote",
		AnnouncementMessage(models.AnnouncementGeneral, "Note"))
}

func TestGroupReminderMessage(t *testing.T) {
	entries := []GroupReminderEntry{
		{StudentName: "Ahmed Khan", Amount: 500, DueDay: 5},
		{StudentName: "Sara Ali", Amount: 600, DueDay: 10},
	}
	msg := GroupReminderMessage(entries, 3, 2024)

	assert.True(t, strings.HasPrefix(msg, "*Fee Reminder - March 2024*\n\n"))
	assert.Contains(t, msg, "1. Ahmed Khan\n   Amount: PKR500\n   Due Date: 5th\n\n")
	assert.Contains(t, msg, "2. Sara Ali\n   Amount: PKR600\n   Due Date: 10th\n\n")
	assert.True(t, strings.HasSuffix(msg, "JazakAllah Khair"))
}
