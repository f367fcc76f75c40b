package models

import "time"

// AnnouncementType categorizes a broadcast.
type AnnouncementType string

const (
	AnnouncementHoliday      AnnouncementType = "holiday"
	AnnouncementTimingChange AnnouncementType = "timing_change"
	AnnouncementGeneral      AnnouncementType = "general"
)

// Announcement is a log of a broadcast event. SentTo is empty when the
// announcement went out through the group link.
type Announcement struct {
	ID        string           `json:"id"`
	Type      AnnouncementType `json:"type"`
	Message   string           `json:"message"`
	SentTo    []*Student       `json:"sent_to"`
	SentAt    time.Time        `json:"sent_at"`
	CreatedAt time.Time        `json:"created_at"`
}
