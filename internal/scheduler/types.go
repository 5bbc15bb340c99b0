package scheduler

import "github.com/KirkDiggler/agendabot/internal/models"

// Handle identifies a scheduled notification
type Handle string

// Payload is the content delivered when a notification fires
type Payload struct {
	// Type is always session_reminder for reminders
	Type models.NotificationType `json:"type"`

	// UserID is the recipient
	UserID string `json:"userId"`

	// SessionID is the session the reminder is for
	SessionID string `json:"sessionId"`

	// ReminderMinutes is the lead-time the reminder was scheduled with
	ReminderMinutes int `json:"reminderMinutes"`

	Title string `json:"title"`
	Body  string `json:"body"`
}
