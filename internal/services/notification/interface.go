package notification

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/notification Service,SettingsLoader

// SettingsLoader reads a user's notification settings
type SettingsLoader interface {
	// LoadSettings never fails on missing or unreadable data; it returns defaults instead
	LoadSettings(ctx context.Context, input *LoadSettingsInput) (*models.NotificationSettings, error)
}

// Service defines the interface for notification settings and the inbox
type Service interface {
	SettingsLoader

	// SaveSettings persists settings; write failures are logged, not returned
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// ListNotifications returns a user's inbox, newest first
	ListNotifications(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error)

	UnreadCount(ctx context.Context, input *UnreadCountInput) (int, error)

	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*models.Notification, error)

	NotifySessionReminder(ctx context.Context, input *SessionReminderInput) (*models.Notification, error)

	NotifyMessage(ctx context.Context, input *MessageInput) (*models.Notification, error)

	NotifyConnectionRequest(ctx context.Context, input *ConnectionRequestInput) (*models.Notification, error)

	NotifyConnectionAccepted(ctx context.Context, input *ConnectionAcceptedInput) (*models.Notification, error)

	NotifyAnnouncement(ctx context.Context, input *AnnouncementInput) (*models.Notification, error)

	NotifyScheduleChange(ctx context.Context, input *ScheduleChangeInput) (*models.Notification, error)

	MarkRead(ctx context.Context, input *MarkReadInput) (*models.Notification, error)

	MarkAllRead(ctx context.Context, input *MarkAllReadInput) error

	DeleteNotification(ctx context.Context, input *DeleteNotificationInput) error

	DeleteAllNotifications(ctx context.Context, input *DeleteAllNotificationsInput) error
}
