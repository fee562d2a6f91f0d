package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/chidupudi/ai-assistant/database/migrations"
	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/chidupudi/ai-assistant/internal/database"
	"github.com/chidupudi/ai-assistant/internal/models"
)

var sampleEmails = []struct {
	subject string
	sender  string
	email   string
}{
	{"Q3 roadmap review - feedback needed", "Sarah Chen", "sarah.chen@company.com"},
	{"Production incident postmortem draft", "DevOps Team", "devops@company.com"},
	{"Client onboarding docs ready for review", "Rahul Mehta", "rahul.mehta@company.com"},
	{"Reminder: security training due Friday", "HR", "hr@company.com"},
	{"API v2 migration timeline", "Platform Team", "platform@company.com"},
	{"Weekly metrics digest", "Analytics Bot", "noreply@company.com"},
}

var sampleEvents = []string{
	"Sprint planning",
	"Daily standup",
	"Client demo presentation",
	"Team retrospective",
	"1-on-1 with manager",
	"Architecture review meeting",
	"Product roadmap discussion",
	"Department all-hands",
}

var sampleTasks = []string{
	"Complete API documentation for v2 endpoints",
	"Review and merge pending pull requests",
	"Update project timeline and milestones",
	"Prepare slides for the sprint demo",
	"Triage open support tickets",
	"Write integration tests for the billing flow",
}

func main() {
	userID := flag.Uint("user", 1, "user id to seed data for")
	emailCount := flag.Int("emails", 20, "number of emails to generate")
	taskCount := flag.Int("tasks", 15, "number of tasks to generate")
	eventCount := flag.Int("events", 10, "number of calendar events to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if err := database.Initialize(cfg); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := migrations.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	db := database.GetDB()
	priorities := []string{"high", "medium", "low"}
	labels := []string{"work", "urgent", "review", "info", "action-required"}
	statuses := []string{models.TaskPending, models.TaskInProgress, models.TaskCompleted}
	categories := []string{"development", "documentation", "meeting", "review"}

	for i := 0; i < *emailCount; i++ {
		tpl := sampleEmails[i%len(sampleEmails)]
		priority := priorities[rand.IntN(len(priorities))]
		email := models.Email{
			ID:          "email_" + uuid.New().String()[:8],
			UserID:      uint(*userID),
			Subject:     tpl.subject,
			Sender:      tpl.sender,
			SenderEmail: tpl.email,
			Body:        "Hi,\n\nPlease take a look at: " + tpl.subject + ". Let me know if you have questions.\n\nThanks,\n" + tpl.sender,
			Priority:    priority,
			IsRead:      rand.IntN(2) == 0,
			Labels:      models.StringList{labels[rand.IntN(len(labels))]},
			ReceivedAt:  time.Now().Add(-time.Duration(rand.IntN(7*24)) * time.Hour),
		}
		if err := db.Create(&email).Error; err != nil {
			log.Fatal("Failed to create email:", err)
		}
	}
	log.Printf("Generated %d emails", *emailCount)

	for i := 0; i < *taskCount; i++ {
		status := statuses[rand.IntN(len(statuses))]
		due := time.Now().AddDate(0, 0, rand.IntN(21)-7)
		task := models.Task{
			ID:             "task_" + uuid.New().String()[:8],
			UserID:         uint(*userID),
			Title:          sampleTasks[i%len(sampleTasks)],
			Description:    "Description for " + sampleTasks[i%len(sampleTasks)],
			DueDate:        &due,
			Priority:       priorities[rand.IntN(len(priorities))],
			Status:         status,
			Category:       categories[rand.IntN(len(categories))],
			Tags:           models.StringList{"backend"},
			EstimatedHours: 2 + rand.IntN(6),
		}
		if status == models.TaskCompleted {
			completed := time.Now().AddDate(0, 0, -rand.IntN(5))
			task.CompletedAt = &completed
			task.ActualHours = 1 + rand.IntN(6)
		}
		if err := db.Create(&task).Error; err != nil {
			log.Fatal("Failed to create task:", err)
		}
	}
	log.Printf("Generated %d tasks", *taskCount)

	locations := []string{"Conference Room A", "Conference Room B", "Zoom", "Teams", "Office"}
	for i := 0; i < *eventCount; i++ {
		title := sampleEvents[i%len(sampleEvents)]
		start := time.Now().AddDate(0, 0, rand.IntN(10)-2).Truncate(time.Hour).Add(time.Duration(9+rand.IntN(8)) * time.Hour)
		event := models.CalendarEvent{
			ID:          "cal_" + uuid.New().String()[:8],
			UserID:      uint(*userID),
			Title:       title,
			Description: "Description for " + title,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(1+rand.IntN(2)) * time.Hour),
			Location:    locations[rand.IntN(len(locations))],
			Status:      "confirmed",
		}
		if rand.IntN(2) == 0 {
			event.MeetingLink = "https://zoom.us/j/123456789"
		}
		if err := db.Create(&event).Error; err != nil {
			log.Fatal("Failed to create event:", err)
		}
	}
	log.Printf("Generated %d calendar events", *eventCount)
}
