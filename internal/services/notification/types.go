package notification

import (
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/repositories/kv"
	"go.uber.org/zap"
)

// settingsKeyPrefix namespaces per-user settings in the key-value store
const settingsKeyPrefix = "notificationSettings:"

// DefaultListLimit caps inbox listings
const DefaultListLimit = 50

// ScheduleChangeType is the kind of schedule change announced
type ScheduleChangeType string

const (
	ScheduleChangeTime      ScheduleChangeType = "time"
	ScheduleChangeLocation  ScheduleChangeType = "location"
	ScheduleChangeCancelled ScheduleChangeType = "cancelled"
)

var scheduleChangeTitles = map[ScheduleChangeType]string{
	ScheduleChangeTime:      "Session Time Changed",
	ScheduleChangeLocation:  "Session Location Changed",
	ScheduleChangeCancelled: "Session Cancelled",
}

// Config holds configuration for the notification service
type Config struct {
	DocumentRepo document.Repository
	KVRepo       kv.Repository
	Clock        clock.Clock
	Logger       *zap.Logger
}

type LoadSettingsInput struct {
	UserID string
}

type SaveSettingsInput struct {
	UserID   string
	Settings *models.NotificationSettings
}

// ListNotificationsInput narrows a user's inbox
type ListNotificationsInput struct {
	UserID     string
	UnreadOnly bool
	Type       models.NotificationType

	// Limit defaults to DefaultListLimit
	Limit int
}

type ListNotificationsOutput struct {
	Notifications []*models.Notification
}

type UnreadCountInput struct {
	UserID string
}

type CreateNotificationInput struct {
	UserID string
	Type   models.NotificationType
	Title  string
	Body   string
	Data   map[string]string
}

type SessionReminderInput struct {
	UserID       string
	SessionID    string
	SessionTitle string
}

type MessageInput struct {
	UserID         string
	SenderName     string
	ConversationID string
	Preview        string
}

type ConnectionRequestInput struct {
	UserID        string
	RequesterName string
	ConnectionID  string
}

type ConnectionAcceptedInput struct {
	UserID       string
	AccepterName string
	ConnectionID string
}

type AnnouncementInput struct {
	UserID         string
	Title          string
	Body           string
	AnnouncementID string
}

type ScheduleChangeInput struct {
	UserID       string
	SessionID    string
	SessionTitle string
	ChangeType   ScheduleChangeType
	Details      string
}

type MarkReadInput struct {
	NotificationID string
}

type MarkAllReadInput struct {
	UserID string
}

type DeleteNotificationInput struct {
	NotificationID string
}

type DeleteAllNotificationsInput struct {
	UserID string
}
