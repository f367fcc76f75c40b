package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/owaisdotcom/madarsa-apiv2/app/models"
)

// CreateAnnouncement logs a broadcast and its individual recipients in one
// transaction. recipientIDs is empty when the group link was used.
func CreateAnnouncement(db *sql.DB, a *models.Announcement, recipientIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	a.ID = uuid.NewString()
	query := `INSERT INTO announcements (id, type, message, sent_at, created_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING sent_at, created_at`
	if err := tx.QueryRow(query, a.ID, a.Type, a.Message).Scan(&a.SentAt, &a.CreatedAt); err != nil {
		return err
	}

	for _, studentID := range recipientIDs {
		_, err := tx.Exec(`INSERT INTO announcement_recipients (announcement_id, student_id)
						   VALUES ($1, $2)`, a.ID, studentID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetAnnouncements returns the most recent broadcasts with their recipient
// lists populated.
func GetAnnouncements(db *sql.DB, limit int) ([]*models.Announcement, error) {
	rows, err := db.Query(`SELECT id, type, message, sent_at, created_at
						   FROM announcements
						   ORDER BY created_at DESC
						   LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a := &models.Announcement{SentTo: []*models.Student{}}
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.SentAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, a := range announcements {
		recipients, err := getAnnouncementRecipients(db, a.ID)
		if err != nil {
			return nil, err
		}
		a.SentTo = recipients
	}
	return announcements, nil
}

func getAnnouncementRecipients(db *sql.DB, announcementID string) ([]*models.Student, error) {
	rows, err := db.Query(`SELECT s.id, s.full_name, s.phone
						   FROM announcement_recipients ar
						   JOIN students s ON ar.student_id = s.id
						   WHERE ar.announcement_id = $1`, announcementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipients := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.FullName, &s.Phone); err != nil {
			return nil, err
		}
		recipients = append(recipients, s)
	}
	return recipients, rows.Err()
}
