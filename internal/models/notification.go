package models

// NotificationType categorizes inbox notifications and reminder payloads
type NotificationType string

const (
	NotificationTypeSessionReminder    NotificationType = "session_reminder"
	NotificationTypeMessage            NotificationType = "message"
	NotificationTypeConnectionRequest  NotificationType = "connection_request"
	NotificationTypeConnectionAccepted NotificationType = "connection_accepted"
	NotificationTypeAnnouncement       NotificationType = "announcement"
	NotificationTypeScheduleChange     NotificationType = "schedule_change"
)

// NotificationSettings is the per-device notification configuration
type NotificationSettings struct {
	// SessionReminders enables reminders for bookmarked sessions
	SessionReminders bool `json:"sessionReminders"`

	// ReminderTimes are the lead-times in minutes at which reminders fire
	ReminderTimes []int `json:"reminderTimes"`

	// NewMessages enables direct message notifications
	NewMessages bool `json:"newMessages"`

	// ConnectionRequests enables networking notifications
	ConnectionRequests bool `json:"connectionRequests"`

	// Announcements enables organizer announcements
	Announcements bool `json:"announcements"`

	// ScheduleChanges enables schedule change alerts
	ScheduleChanges bool `json:"scheduleChanges"`
}

// DefaultNotificationSettings returns the settings used when none are stored
func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		SessionReminders:   true,
		ReminderTimes:      []int{30, 15, 5},
		NewMessages:        true,
		ConnectionRequests: true,
		Announcements:      true,
		ScheduleChanges:    true,
	}
}

// Notification is an entry in a user's notification inbox
type Notification struct {
	Meta

	// UserID is the recipient
	UserID string `json:"userId"`

	// Type categorizes the notification
	Type NotificationType `json:"type"`

	// Title is the headline
	Title string `json:"title"`

	// Body is the message text
	Body string `json:"body"`

	// Data carries type-specific references such as a session ID
	Data map[string]string `json:"data,omitempty"`

	// IsRead indicates the user has seen the notification
	IsRead bool `json:"isRead"`
}
