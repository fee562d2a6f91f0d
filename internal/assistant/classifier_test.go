package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEmailIntentWithUrgencyAndToday(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)
	cls := Classify("show me urgent emails from today", now)

	assert.Equal(t, []string{IntentEmail}, cls.Intents)
	assert.True(t, cls.IsUrgent)
	require.NotNil(t, cls.TimeRange)
	assert.Equal(t, "today", cls.TimeRange.Keyword)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), cls.TimeRange.Start)
	assert.True(t, cls.TimeRange.End.After(now))
}

func TestClassifyCalendarIntent(t *testing.T) {
	cls := Classify("what meetings do I have tomorrow?", time.Now())

	assert.Equal(t, []string{IntentCalendar}, cls.Intents)
	require.NotNil(t, cls.TimeRange)
	assert.Equal(t, "tomorrow", cls.TimeRange.Keyword)

	for _, q := range []string{"show my calendar", "what's on my schedule", "any appointments"} {
		assert.Contains(t, Classify(q, time.Now()).Intents, IntentCalendar, q)
	}
}

func TestClassifyDeadlineIntent(t *testing.T) {
	cls := Classify("what is overdue?", time.Now())

	assert.Contains(t, cls.Intents, IntentDeadline)
	assert.False(t, cls.IsUrgent)
	assert.Nil(t, cls.TimeRange)
}

func TestClassifyMultipleIntents(t *testing.T) {
	cls := Classify("any tasks due this week, and new mail?", time.Now())

	assert.Contains(t, cls.Intents, IntentEmail)
	assert.Contains(t, cls.Intents, IntentTask)
	assert.Contains(t, cls.Intents, IntentDeadline)
	require.NotNil(t, cls.TimeRange)
	assert.Equal(t, "this week", cls.TimeRange.Keyword)
}

func TestClassifyFallsBackToGeneral(t *testing.T) {
	cls := Classify("hello there", time.Now())

	assert.Equal(t, []string{IntentGeneral}, cls.Intents)
	assert.False(t, cls.IsUrgent)
	assert.Nil(t, cls.TimeRange)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	cls := Classify("URGENT: check my INBOX Tomorrow", time.Now())

	assert.Contains(t, cls.Intents, IntentEmail)
	assert.True(t, cls.IsUrgent)
	require.NotNil(t, cls.TimeRange)
	assert.Equal(t, "tomorrow", cls.TimeRange.Keyword)
}
