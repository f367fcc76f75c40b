package services

import (
	"errors"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
	"github.com/owaisdotcom/madarsa-apiv2/app/whatsapp"
)

// ErrNoActiveStudents is returned when individual announcement links are
// requested but the roster is empty.
var ErrNoActiveStudents = errors.New("no active students found")

// AnnouncementLink is one ready-to-open link of a broadcast batch.
type AnnouncementLink struct {
	StudentID   string `json:"studentId,omitempty"`
	StudentName string `json:"studentName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Type        string `json:"type,omitempty"`
	Label       string `json:"label,omitempty"`
	Link        string `json:"link"`
}

// AnnouncementResult is the outcome of generating announcement links.
type AnnouncementResult struct {
	TotalStudents int                `json:"totalStudents"`
	IsGroup       bool               `json:"isGroup"`
	GroupLink     string             `json:"groupLink,omitempty"`
	Links         []AnnouncementLink `json:"links"`
}

// AnnouncementLinks renders the typed announcement message and either one
// group link or an individual link per active student. Students whose phone
// cannot be normalized are skipped, not fatal.
func (e *Engine) AnnouncementLinks(announcementType models.AnnouncementType, message string, useGroup bool) (*AnnouncementResult, error) {
	text := whatsapp.AnnouncementMessage(announcementType, message)

	if useGroup {
		link, err := whatsapp.GroupLink(e.groupInvite, text)
		if err != nil {
			return nil, err
		}
		return &AnnouncementResult{
			TotalStudents: 0,
			IsGroup:       true,
			GroupLink:     link,
			Links: []AnnouncementLink{
				{Type: "group", Label: "WhatsApp Group", Link: link},
			},
		}, nil
	}

	students, err := e.students.ActiveStudents()
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrNoActiveStudents
	}

	links := []AnnouncementLink{}
	for _, s := range students {
		link, err := whatsapp.Link(s.Phone, text)
		if err != nil {
			continue
		}
		links = append(links, AnnouncementLink{
			StudentID:   s.ID,
			StudentName: s.FullName,
			Phone:       s.Phone,
			Link:        link,
		})
	}

	return &AnnouncementResult{
		TotalStudents: len(students),
		IsGroup:       false,
		Links:         links,
	}, nil
}

// ConfirmationLinkForStudent builds the payment confirmation link sent after
// a fee is recorded.
func (e *Engine) ConfirmationLinkForStudent(studentID string, amount float64, month, year int) (string, error) {
	s, err := e.students.StudentByID(studentID)
	if err != nil {
		return "", err
	}
	message := whatsapp.PaymentConfirmationMessage(s.FullName, amount, month, year)
	return whatsapp.Link(s.Phone, message)
}
