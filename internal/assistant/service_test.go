package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chidupudi/ai-assistant/internal/models"
)

func TestSummarizeEmails(t *testing.T) {
	emails := []models.Email{
		{Subject: "Roadmap review", Sender: "Sarah", Priority: "high"},
		{Subject: "Weekly digest", Sender: "Bot", Priority: "low"},
	}
	cls := Classify("emails", time.Now())

	got := summarizeEmails(emails, cls)

	assert.Contains(t, got, "2 matching emails")
	assert.Contains(t, got, "Roadmap review (from Sarah, high priority)")
	assert.Contains(t, got, "Weekly digest (from Bot)")
}

func TestSummarizeEmailsEmpty(t *testing.T) {
	urgent := Classify("urgent mail", time.Now())
	assert.Equal(t, "No urgent emails right now.", summarizeEmails(nil, urgent))

	plain := Classify("mail", time.Now())
	assert.Equal(t, "Your inbox has no matching emails.", summarizeEmails(nil, plain))
}

func TestSummarizeEvents(t *testing.T) {
	events := []models.CalendarEvent{
		{Title: "Sprint planning", StartTime: time.Date(2026, 7, 6, 10, 0, 0, 0, time.UTC), Location: "Zoom"},
		{Title: "Client demo presentation", StartTime: time.Date(2026, 7, 6, 14, 0, 0, 0, time.UTC)},
	}
	cls := Classify("meetings", time.Now())

	got := summarizeEvents(events, cls)

	assert.Contains(t, got, "2 meetings coming up")
	assert.Contains(t, got, "Sprint planning (Mon Jul 6, 10:00 AM, Zoom)")
	assert.Contains(t, got, "Client demo presentation (Mon Jul 6, 2:00 PM)")
}

func TestSummarizeEventsEmpty(t *testing.T) {
	today := Classify("meetings today", time.Now())
	assert.Equal(t, "Your calendar is clear today.", summarizeEvents(nil, today))

	plain := Classify("meetings", time.Now())
	assert.Equal(t, "No upcoming meetings on your calendar.", summarizeEvents(nil, plain))
}

func TestSummarizeTasksOverdueLabel(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{{Title: "Ship the release", DueDate: &due}}
	cls := Classify("anything overdue?", time.Now())

	got := summarizeTasks(tasks, cls, time.Now())

	assert.Contains(t, got, "1 overdue task:")
	assert.Contains(t, got, "Ship the release (due May 1)")
}

func TestSummarizeTasksEmpty(t *testing.T) {
	overdue := Classify("overdue", time.Now())
	assert.Equal(t, "Nothing is overdue. Nice work.", summarizeTasks(nil, overdue, time.Now()))

	plain := Classify("tasks", time.Now())
	assert.Equal(t, "No matching tasks found.", summarizeTasks(nil, plain, time.Now()))
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	pending := models.Task{Status: models.TaskPending, DueDate: &past}
	assert.True(t, pending.IsOverdue(now))

	done := models.Task{Status: models.TaskCompleted, DueDate: &past}
	assert.False(t, done.IsOverdue(now))

	upcoming := models.Task{Status: models.TaskPending, DueDate: &future}
	assert.False(t, upcoming.IsOverdue(now))

	noDue := models.Task{Status: models.TaskPending}
	assert.False(t, noDue.IsOverdue(now))
}
