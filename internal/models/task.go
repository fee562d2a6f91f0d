package models

import "time"

// Task statuses move pending → in_progress → completed.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Task is a work item surfaced on the work-assistant dashboard.
type Task struct {
	ID             string     `json:"id" gorm:"primarykey"`
	UserID         uint       `json:"user_id" gorm:"not null;index"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"due_date" gorm:"index"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status" gorm:"index;default:pending"`
	Category       string     `json:"category"`
	Tags           StringList `json:"tags" gorm:"type:jsonb"`
	EstimatedHours int        `json:"estimated_hours"`
	ActualHours    int        `json:"actual_hours"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsOverdue reports whether a not-yet-completed task's due date has passed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskCompleted && t.DueDate != nil && t.DueDate.Before(now)
}

func (Task) TableName() string {
	return "tasks"
}
