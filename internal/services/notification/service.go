package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/repositories/kv"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	documentRepo document.Repository
	kvRepo       kv.Repository
	clock        clock.Clock
	logger       *zap.Logger
}

// New creates a new notification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}
	if cfg.KVRepo == nil {
		return nil, ErrNilKVRepo
	}

	s := &service{
		documentRepo: cfg.DocumentRepo,
		kvRepo:       cfg.KVRepo,
		clock:        cfg.Clock,
		logger:       logging.OrNop(cfg.Logger),
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	return s, nil
}

// LoadSettings returns the stored settings merged over the defaults. Missing
// or unreadable data yields the defaults.
func (s *service) LoadSettings(ctx context.Context, input *LoadSettingsInput) (*models.NotificationSettings, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	settings := models.DefaultNotificationSettings()

	raw, err := s.kvRepo.Get(ctx, settingsKeyPrefix+input.UserID)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("failed to read notification settings, using defaults",
				zap.String("user_id", input.UserID),
				zap.Error(err))
		}
		return settings, nil
	}

	if err := json.Unmarshal([]byte(raw), settings); err != nil {
		s.logger.Warn("unreadable notification settings, using defaults",
			zap.String("user_id", input.UserID),
			zap.Error(err))
		return models.DefaultNotificationSettings(), nil
	}

	return settings, nil
}

// SaveSettings persists settings; a write failure is logged and dropped
func (s *service) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}
	if input.Settings == nil {
		return errors.New("settings cannot be nil")
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.kvRepo.Set(ctx, settingsKeyPrefix+input.UserID, string(data)); err != nil {
		s.logger.Warn("failed to save notification settings",
			zap.String("user_id", input.UserID),
			zap.Error(err))
	}

	return nil
}

// ListNotifications returns a user's inbox, newest first
func (s *service) ListNotifications(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	filters := []document.Filter{document.Equal("userId", input.UserID)}
	if input.UnreadOnly {
		filters = append(filters, document.Equal("isRead", false))
	}
	if input.Type != "" {
		filters = append(filters, document.Equal("type", input.Type))
	}

	notifications, _, err := s.list(ctx, filters, limit)
	if err != nil {
		return nil, err
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
	}, nil
}

// UnreadCount counts every unread notification of a user
func (s *service) UnreadCount(ctx context.Context, input *UnreadCountInput) (int, error) {
	if input == nil || input.UserID == "" {
		return 0, ErrEmptyUserID
	}

	_, total, err := s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
		document.Equal("isRead", false),
	}, 1)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// CreateNotification stores an unread inbox entry
func (s *service) CreateNotification(ctx context.Context, input *CreateNotificationInput) (*models.Notification, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	notification := &models.Notification{
		UserID: input.UserID,
		Type:   input.Type,
		Title:  input.Title,
		Body:   input.Body,
		Data:   input.Data,
		IsRead: false,
	}

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionNotifications,
		Fields:     notification,
	})
	if err != nil {
		s.logger.Error("failed to create notification",
			zap.String("user_id", input.UserID),
			zap.String("type", string(input.Type)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return document.Decode[models.Notification](doc)
}

func (s *service) NotifySessionReminder(ctx context.Context, input *SessionReminderInput) (*models.Notification, error) {
	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeSessionReminder,
		Title:  "Session Reminder",
		Body:   fmt.Sprintf("%q starts soon", input.SessionTitle),
		Data:   map[string]string{"sessionId": input.SessionID},
	})
}

func (s *service) NotifyMessage(ctx context.Context, input *MessageInput) (*models.Notification, error) {
	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeMessage,
		Title:  fmt.Sprintf("New message from %s", input.SenderName),
		Body:   input.Preview,
		Data:   map[string]string{"conversationId": input.ConversationID},
	})
}

func (s *service) NotifyConnectionRequest(ctx context.Context, input *ConnectionRequestInput) (*models.Notification, error) {
	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeConnectionRequest,
		Title:  "New Connection Request",
		Body:   fmt.Sprintf("%s wants to connect with you", input.RequesterName),
		Data:   map[string]string{"connectionId": input.ConnectionID},
	})
}

func (s *service) NotifyConnectionAccepted(ctx context.Context, input *ConnectionAcceptedInput) (*models.Notification, error) {
	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeConnectionAccepted,
		Title:  "Connection Accepted",
		Body:   fmt.Sprintf("%s accepted your connection request", input.AccepterName),
		Data:   map[string]string{"connectionId": input.ConnectionID},
	})
}

func (s *service) NotifyAnnouncement(ctx context.Context, input *AnnouncementInput) (*models.Notification, error) {
	var data map[string]string
	if input.AnnouncementID != "" {
		data = map[string]string{"announcementId": input.AnnouncementID}
	}

	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeAnnouncement,
		Title:  input.Title,
		Body:   input.Body,
		Data:   data,
	})
}

func (s *service) NotifyScheduleChange(ctx context.Context, input *ScheduleChangeInput) (*models.Notification, error) {
	title, ok := scheduleChangeTitles[input.ChangeType]
	if !ok {
		return nil, ErrInvalidChangeType
	}

	return s.CreateNotification(ctx, &CreateNotificationInput{
		UserID: input.UserID,
		Type:   models.NotificationTypeScheduleChange,
		Title:  title,
		Body:   fmt.Sprintf("%q: %s", input.SessionTitle, input.Details),
		Data: map[string]string{
			"sessionId":  input.SessionID,
			"changeType": string(input.ChangeType),
		},
	})
}

// MarkRead flags a single notification as read
func (s *service) MarkRead(ctx context.Context, input *MarkReadInput) (*models.Notification, error) {
	if input == nil || input.NotificationID == "" {
		return nil, ErrEmptyNotificationID
	}

	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionNotifications,
		ID:         input.NotificationID,
		Fields:     map[string]any{"isRead": true},
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return document.Decode[models.Notification](doc)
}

// MarkAllRead flags every unread notification of a user as read
func (s *service) MarkAllRead(ctx context.Context, input *MarkAllReadInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	unread, _, err := s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
		document.Equal("isRead", false),
	}, 0)
	if err != nil {
		return err
	}

	for _, n := range unread {
		if _, err := s.MarkRead(ctx, &MarkReadInput{NotificationID: n.ID}); err != nil {
			return err
		}
	}

	return nil
}

// DeleteNotification removes one notification
func (s *service) DeleteNotification(ctx context.Context, input *DeleteNotificationInput) error {
	if input == nil || input.NotificationID == "" {
		return ErrEmptyNotificationID
	}

	err := s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionNotifications,
		ID:         input.NotificationID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// DeleteAllNotifications empties a user's inbox
func (s *service) DeleteAllNotifications(ctx context.Context, input *DeleteAllNotificationsInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	all, _, err := s.list(ctx, []document.Filter{document.Equal("userId", input.UserID)}, 0)
	if err != nil {
		return err
	}

	for _, n := range all {
		if err := s.DeleteNotification(ctx, &DeleteNotificationInput{NotificationID: n.ID}); err != nil && !errors.Is(err, ErrNotificationNotFound) {
			return err
		}
	}

	return nil
}

func (s *service) list(ctx context.Context, filters []document.Filter, limit int) ([]*models.Notification, int, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionNotifications,
		Filters:    filters,
		Orders:     []document.Order{document.Desc(document.FieldCreatedAt)},
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list notifications", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications, err := document.DecodeAll[models.Notification](out.Documents)
	if err != nil {
		return nil, 0, err
	}

	return notifications, out.Total, nil
}
