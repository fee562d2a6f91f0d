package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chidupudi/ai-assistant/internal/models"
)

// Source names a record the reply was composed from.
type Source struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Reply is the assistant's answer to one chat message.
type Reply struct {
	Response       string   `json:"response"`
	Sources        []Source `json:"sources"`
	ConversationID string   `json:"conversation_id"`
}

// Service answers chat messages by classifying them and composing a reply
// from the user's emails and tasks.
type Service struct {
	db *gorm.DB
}

// NewService creates an assistant service over the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

const contextLimit = 10

// Answer processes one chat message. Both the user turn and the composed
// assistant turn are persisted under the conversation id (a fresh one is
// created when the caller sends none).
func (s *Service) Answer(userID uint, message, conversationID string) (*Reply, error) {
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	now := time.Now()
	cls := Classify(message, now)

	var parts []string
	var sources []Source

	wantEmails := cls.hasIntent(IntentEmail) || cls.hasIntent(IntentGeneral)
	wantEvents := cls.hasIntent(IntentCalendar) || cls.hasIntent(IntentGeneral)
	wantTasks := cls.hasIntent(IntentTask) || cls.hasIntent(IntentDeadline) || cls.hasIntent(IntentGeneral)

	if wantEmails {
		emails, err := s.fetchEmails(userID, cls)
		if err != nil {
			return nil, err
		}
		parts = append(parts, summarizeEmails(emails, cls))
		for _, e := range emails {
			sources = append(sources, Source{Type: "email", ID: e.ID, Title: e.Subject})
		}
	}

	if wantEvents {
		events, err := s.fetchEvents(userID, cls, now)
		if err != nil {
			return nil, err
		}
		parts = append(parts, summarizeEvents(events, cls))
		for _, e := range events {
			sources = append(sources, Source{Type: "event", ID: e.ID, Title: e.Title})
		}
	}

	if wantTasks {
		tasks, err := s.fetchTasks(userID, cls, now)
		if err != nil {
			return nil, err
		}
		parts = append(parts, summarizeTasks(tasks, cls, now))
		for _, t := range tasks {
			sources = append(sources, Source{Type: "task", ID: t.ID, Title: t.Title})
		}
	}

	reply := &Reply{
		Response:       strings.Join(parts, "\n\n"),
		Sources:        sources,
		ConversationID: conversationID,
	}

	turns := []models.Message{
		{ID: uuid.New().String(), UserID: userID, ConversationID: conversationID, Role: "user", Content: message},
		{ID: uuid.New().String(), UserID: userID, ConversationID: conversationID, Role: "assistant", Content: reply.Response},
	}
	if err := s.db.Create(&turns).Error; err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %v", err)
	}

	return reply, nil
}

// Conversation returns the stored turns of one conversation, oldest first.
func (s *Service) Conversation(userID uint, conversationID string) ([]models.Message, error) {
	var turns []models.Message
	err := s.db.Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").
		Find(&turns).Error
	return turns, err
}

func (s *Service) fetchEmails(userID uint, cls Classification) ([]models.Email, error) {
	query := s.db.Where("user_id = ?", userID)
	if cls.IsUrgent {
		query = query.Where("priority = ?", "high")
	}
	if cls.TimeRange != nil {
		query = query.Where("received_at BETWEEN ? AND ?", cls.TimeRange.Start, cls.TimeRange.End)
	}

	var emails []models.Email
	err := query.Order("received_at DESC").Limit(contextLimit).Find(&emails).Error
	return emails, err
}

func (s *Service) fetchEvents(userID uint, cls Classification, now time.Time) ([]models.CalendarEvent, error) {
	query := s.db.Where("user_id = ?", userID)
	if cls.TimeRange != nil {
		query = query.Where("start_time BETWEEN ? AND ?", cls.TimeRange.Start, cls.TimeRange.End)
	} else {
		query = query.Where("start_time >= ?", now)
	}

	var events []models.CalendarEvent
	err := query.Order("start_time ASC").Limit(contextLimit).Find(&events).Error
	return events, err
}

func (s *Service) fetchTasks(userID uint, cls Classification, now time.Time) ([]models.Task, error) {
	query := s.db.Where("user_id = ?", userID)
	if cls.hasIntent(IntentDeadline) {
		query = query.Where("status <> ?", models.TaskCompleted).
			Where("due_date IS NOT NULL AND due_date < ?", now)
	} else {
		if cls.IsUrgent {
			query = query.Where("priority = ?", "high")
		}
		if cls.TimeRange != nil {
			query = query.Where("due_date BETWEEN ? AND ?", cls.TimeRange.Start, cls.TimeRange.End)
		}
	}

	var tasks []models.Task
	err := query.Order("due_date ASC").Limit(contextLimit).Find(&tasks).Error
	return tasks, err
}

func summarizeEmails(emails []models.Email, cls Classification) string {
	if len(emails) == 0 {
		if cls.IsUrgent {
			return "No urgent emails right now."
		}
		return "Your inbox has no matching emails."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d matching email%s:", len(emails), plural(len(emails)))
	for _, e := range emails {
		fmt.Fprintf(&b, "\n- %s (from %s", e.Subject, e.Sender)
		if e.Priority == "high" {
			b.WriteString(", high priority")
		}
		b.WriteString(")")
	}
	return b.String()
}

func summarizeEvents(events []models.CalendarEvent, cls Classification) string {
	if len(events) == 0 {
		if cls.TimeRange != nil {
			return fmt.Sprintf("Your calendar is clear %s.", cls.TimeRange.Keyword)
		}
		return "No upcoming meetings on your calendar."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d meeting%s coming up:", len(events), plural(len(events)))
	for _, e := range events {
		fmt.Fprintf(&b, "\n- %s (%s", e.Title, e.StartTime.Format("Mon Jan 2, 3:04 PM"))
		if e.Location != "" {
			fmt.Fprintf(&b, ", %s", e.Location)
		}
		b.WriteString(")")
	}
	return b.String()
}

func summarizeTasks(tasks []models.Task, cls Classification, now time.Time) string {
	if len(tasks) == 0 {
		if cls.hasIntent(IntentDeadline) {
			return "Nothing is overdue. Nice work."
		}
		return "No matching tasks found."
	}

	label := "open"
	if cls.hasIntent(IntentDeadline) {
		label = "overdue"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d %s task%s:", len(tasks), label, plural(len(tasks)))
	for _, t := range tasks {
		fmt.Fprintf(&b, "\n- %s", t.Title)
		if t.DueDate != nil {
			fmt.Fprintf(&b, " (due %s)", t.DueDate.Format("Jan 2"))
		}
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
