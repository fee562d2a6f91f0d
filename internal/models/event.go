package models

import "time"

// CalendarEvent is a scheduled meeting surfaced on the work-assistant
// dashboard and in chat answers about the user's schedule.
type CalendarEvent struct {
	ID          string    `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" gorm:"index"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	MeetingLink string    `json:"meeting_link"`
	Status      string    `json:"status" gorm:"default:confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
