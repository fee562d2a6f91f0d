package models

import (
	"time"

	"gorm.io/gorm"
)

// Email is a message surfaced on the work-assistant dashboard.
type Email struct {
	ID          string     `json:"id" gorm:"primarykey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Subject     string     `json:"subject"`
	Sender      string     `json:"sender"`
	SenderEmail string     `json:"sender_email"`
	Body        string     `json:"body"`
	BodyPreview string     `json:"body_preview"`
	Priority    string     `json:"priority" gorm:"index"`
	IsRead      bool       `json:"is_read"`
	IsStarred   bool       `json:"is_starred"`
	Labels      StringList `json:"labels" gorm:"type:jsonb"`
	ReceivedAt  time.Time  `json:"received_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate trims the preview down to the first 150 characters of the
// body when the caller did not supply one.
func (e *Email) BeforeCreate(tx *gorm.DB) error {
	if e.BodyPreview == "" && e.Body != "" {
		preview := e.Body
		if len(preview) > 150 {
			preview = preview[:150] + "..."
		}
		e.BodyPreview = preview
	}
	return nil
}

func (Email) TableName() string {
	return "emails"
}
