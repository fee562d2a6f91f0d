package models

import "time"

// Message is one turn of an assistant conversation.
type Message struct {
	ID             string    `json:"id" gorm:"primarykey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	ConversationID string    `json:"conversation_id" gorm:"index"`
	Role           string    `json:"role"` // "user" or "assistant"
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
