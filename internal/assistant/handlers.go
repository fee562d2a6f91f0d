package assistant

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/chidupudi/ai-assistant/internal/models"
)

// Handler serves the work-assistant REST API.
type Handler struct {
	db      *gorm.DB
	cfg     *config.Config
	service *Service
}

// NewHandler wires the assistant handlers to their collaborators.
func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg, service: NewService(db)}
}

func userID(c *gin.Context) uint {
	id, _ := c.Get("user_id")
	uid, _ := id.(uint)
	return uid
}

// parseLimit reads an optional ?limit= value; missing, malformed or
// non-positive values fall back to def.
func parseLimit(c *gin.Context, def int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Chat answers one dashboard chat message
func (h *Handler) Chat(c *gin.Context) {
	var input struct {
		Message        string `json:"message" binding:"required"`
		ConversationID string `json:"conversation_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: message is required"})
		return
	}

	reply, err := h.service.Answer(userID(c), input.Message, input.ConversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// GetConversation returns the stored turns of one conversation
func (h *Handler) GetConversation(c *gin.Context) {
	turns, err := h.service.Conversation(userID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": c.Param("id"), "messages": turns})
}

// ListEmails returns the user's most recent emails
func (h *Handler) ListEmails(c *gin.Context) {
	limit := parseLimit(c, 20)

	var emails []models.Email
	if err := h.db.Where("user_id = ?", userID(c)).
		Order("received_at DESC").
		Limit(limit).
		Find(&emails).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch emails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": emails, "count": len(emails)})
}

// UrgentEmails returns high-priority emails
func (h *Handler) UrgentEmails(c *gin.Context) {
	var emails []models.Email
	if err := h.db.Where("user_id = ? AND priority = ?", userID(c), "high").
		Order("received_at DESC").
		Limit(10).
		Find(&emails).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch emails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": emails, "count": len(emails)})
}

// GetEmail returns a single email
func (h *Handler) GetEmail(c *gin.Context) {
	var email models.Email
	err := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID(c)).First(&email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}

	c.JSON(http.StatusOK, email)
}

// ListEvents returns upcoming calendar events, soonest first
func (h *Handler) ListEvents(c *gin.Context) {
	limit := parseLimit(c, 20)

	var events []models.CalendarEvent
	if err := h.db.Where("user_id = ? AND start_time >= ?", userID(c), time.Now()).
		Order("start_time ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// TodayEvents returns events scheduled for the current day
func (h *Handler) TodayEvents(c *gin.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var events []models.CalendarEvent
	if err := h.db.Where("user_id = ?", userID(c)).
		Where("start_time BETWEEN ? AND ?", dayStart, dayStart.Add(24*time.Hour)).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// ListTasks returns the user's tasks
func (h *Handler) ListTasks(c *gin.Context) {
	limit := parseLimit(c, 20)

	query := h.db.Where("user_id = ?", userID(c))
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Order("due_date ASC").Limit(limit).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// OverdueTasks returns pending tasks whose due date has passed
func (h *Handler) OverdueTasks(c *gin.Context) {
	var tasks []models.Task
	if err := h.db.Where("user_id = ?", userID(c)).
		Where("status <> ?", models.TaskCompleted).
		Where("due_date IS NOT NULL AND due_date < ?", time.Now()).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// CreateTask creates a new task
func (h *Handler) CreateTask(c *gin.Context) {
	var input struct {
		Title          string     `json:"title" binding:"required"`
		Description    string     `json:"description"`
		DueDate        *time.Time `json:"due_date"`
		Priority       string     `json:"priority"`
		Category       string     `json:"category"`
		Tags           []string   `json:"tags"`
		EstimatedHours int        `json:"estimated_hours"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: title is required"})
		return
	}

	task := models.Task{
		ID:             uuid.New().String(),
		UserID:         userID(c),
		Title:          input.Title,
		Description:    input.Description,
		DueDate:        input.DueDate,
		Priority:       input.Priority,
		Status:         models.TaskPending,
		Category:       input.Category,
		Tags:           models.StringList(input.Tags),
		EstimatedHours: input.EstimatedHours,
	}

	if err := h.db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask patches an existing task
func (h *Handler) UpdateTask(c *gin.Context) {
	var input struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		Priority    string     `json:"priority"`
		Status      string     `json:"status"`
		ActualHours *int       `json:"actual_hours"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	err := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID(c)).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.DueDate != nil {
		updates["due_date"] = input.DueDate
	}
	if input.Priority != "" {
		updates["priority"] = input.Priority
	}
	if input.ActualHours != nil {
		updates["actual_hours"] = *input.ActualHours
	}
	if input.Status != "" {
		updates["status"] = input.Status
		if input.Status == models.TaskCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		}
	}

	if err := h.db.Model(&task).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
