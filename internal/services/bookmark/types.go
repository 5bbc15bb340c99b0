package bookmark

import (
	"time"

	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"go.uber.org/zap"
)

// lookupConcurrency bounds parallel session lookups
const lookupConcurrency = 8

const (
	toggleAdded   = "added"
	toggleRemoved = "removed"
	toggleFailed  = "error"
)

// Config holds configuration for a bookmark manager
type Config struct {
	// UserID owns the bookmark set
	UserID string

	DocumentRepo document.Repository
	Sessions     session.Service

	// Settings supplies the reminder preferences; nil uses the defaults
	Settings notification.SettingsLoader

	// Reminders schedules reminders on add; nil disables reminders
	Reminders reminder.Service

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// ProviderConfig holds the dependencies shared by every user's manager
type ProviderConfig struct {
	DocumentRepo document.Repository
	Sessions     session.Service
	Settings     notification.SettingsLoader
	Reminders    reminder.Service
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
}

// ToggleBookmarkInput identifies the session to toggle. Title and start are
// looked up when omitted.
type ToggleBookmarkInput struct {
	SessionID    string
	SessionTitle string
	StartTime    time.Time
}

// ToggleBookmarkOutput reports the resulting membership
type ToggleBookmarkOutput struct {
	Bookmarked bool

	// Reminders is set when the toggle added the bookmark and reminders were attempted
	Reminders *reminder.ScheduleSessionRemindersOutput

	// CancelledReminders counts reminders cancelled by a removal
	CancelledReminders int
}

// UpdateBookmarkInput changes a bookmark's note or reminder lead; nil fields are left alone
type UpdateBookmarkInput struct {
	SessionID    string
	Notes        *string
	ReminderTime *int
}
