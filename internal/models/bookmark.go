package models

// DefaultBookmarkReminderMinutes is the reminder lead stored on new bookmarks
const DefaultBookmarkReminderMinutes = 15

// Bookmark records that a user saved a session to their agenda
type Bookmark struct {
	Meta

	// UserID is the user who saved the session
	UserID string `json:"userId"`

	// SessionID is the saved session
	SessionID string `json:"sessionId"`

	// ReminderTime is the preferred reminder lead in minutes
	ReminderTime int `json:"reminderTime,omitempty"`

	// Notes is an optional free-text note
	Notes string `json:"notes,omitempty"`
}
