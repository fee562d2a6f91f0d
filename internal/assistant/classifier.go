package assistant

import (
	"strings"
	"time"
)

// Intent labels produced by the classifier.
const (
	IntentEmail    = "email_query"
	IntentCalendar = "calendar_query"
	IntentTask     = "task_query"
	IntentDeadline = "deadline_query"
	IntentGeneral  = "general_query"
)

// TimeRange is a window extracted from phrases like "today" or "this week".
type TimeRange struct {
	Keyword string    `json:"keyword"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Classification is the classifier's reading of one chat message.
type Classification struct {
	Intents   []string   `json:"intents"`
	IsUrgent  bool       `json:"is_urgent"`
	TimeRange *TimeRange `json:"time_range,omitempty"`
	Query     string     `json:"original_query"`
}

var intentKeywords = map[string][]string{
	IntentEmail:    {"email", "inbox", "message", "mail"},
	IntentCalendar: {"meeting", "calendar", "schedule", "appointment"},
	IntentTask:     {"task", "todo", "assignment", "work"},
	IntentDeadline: {"deadline", "due", "overdue"},
}

var urgencyKeywords = []string{"urgent", "asap", "important", "critical", "high priority"}

var timeKeywords = []struct {
	keyword string
	days    int
}{
	{"today", 0},
	{"tomorrow", 1},
	{"this week", 7},
	{"next week", 14},
}

// Classify detects the intents, urgency and time window of a chat message.
// A message matching no keyword is a general query.
func Classify(query string, now time.Time) Classification {
	lower := strings.ToLower(query)

	var intents []string
	for _, intent := range []string{IntentEmail, IntentCalendar, IntentTask, IntentDeadline} {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(lower, kw) {
				intents = append(intents, intent)
				break
			}
		}
	}
	if len(intents) == 0 {
		intents = []string{IntentGeneral}
	}

	isUrgent := false
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			isUrgent = true
			break
		}
	}

	var timeRange *TimeRange
	for _, tk := range timeKeywords {
		if strings.Contains(lower, tk.keyword) {
			dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			timeRange = &TimeRange{
				Keyword: tk.keyword,
				Start:   dayStart,
				End:     now.AddDate(0, 0, tk.days).Add(24 * time.Hour),
			}
			break
		}
	}

	return Classification{
		Intents:   intents,
		IsUrgent:  isUrgent,
		TimeRange: timeRange,
		Query:     query,
	}
}

func (c Classification) hasIntent(intent string) bool {
	for _, i := range c.Intents {
		if i == intent {
			return true
		}
	}
	return false
}
