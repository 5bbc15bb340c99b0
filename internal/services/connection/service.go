package connection

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	documentRepo  document.Repository
	notifications notification.Service
	logger        *zap.Logger
}

// New creates a new connection service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}

	return &service{
		documentRepo:  cfg.DocumentRepo,
		notifications: cfg.Notifications,
		logger:        logging.OrNop(cfg.Logger),
	}, nil
}

var byNewest = []document.Order{document.Desc(document.FieldCreatedAt)}

// involving matches connections where userID is on either side
func involving(userID string) document.Filter {
	return document.Or(
		document.Equal("requesterId", userID),
		document.Equal("recipientId", userID),
	)
}

func (s *service) SendRequest(ctx context.Context, input *SendRequestInput) (*models.Connection, error) {
	if input == nil || input.RequesterID == "" || input.RecipientID == "" {
		return nil, ErrEmptyUserID
	}
	if input.RequesterID == input.RecipientID {
		return nil, ErrSelfConnection
	}

	existing, err := s.Between(ctx, &BetweenInput{UserID: input.RequesterID, OtherUserID: input.RecipientID})
	if err != nil {
		return nil, err
	}

	var conn *models.Connection
	switch {
	case existing == nil:
		doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
			Collection: document.CollectionConnections,
			Fields: &models.Connection{
				RequesterID: input.RequesterID,
				RecipientID: input.RecipientID,
				Status:      models.ConnectionStatusPending,
				Message:     input.Message,
			},
		})
		if err != nil {
			s.logger.Error("failed to send connection request",
				zap.String("requester_id", input.RequesterID),
				zap.String("recipient_id", input.RecipientID),
				zap.Error(err))
			return nil, fmt.Errorf("failed to send connection request: %w", err)
		}
		conn, err = document.Decode[models.Connection](doc)
		if err != nil {
			return nil, err
		}
	case existing.Status == models.ConnectionStatusDeclined:
		conn, err = s.update(ctx, existing.ID, map[string]any{
			"requesterId": input.RequesterID,
			"recipientId": input.RecipientID,
			"status":      models.ConnectionStatusPending,
			"message":     input.Message,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrAlreadyConnected
	}

	name := input.RequesterName
	if name == "" {
		name = input.RequesterID
	}
	s.notify(ctx, input.RecipientID, func(settings *models.NotificationSettings) error {
		if !settings.ConnectionRequests {
			return nil
		}
		_, err := s.notifications.NotifyConnectionRequest(ctx, &notification.ConnectionRequestInput{
			UserID:        input.RecipientID,
			RequesterName: name,
			ConnectionID:  conn.ID,
		})
		return err
	})

	return conn, nil
}

func (s *service) Accept(ctx context.Context, input *RespondInput) (*models.Connection, error) {
	conn, err := s.respond(ctx, input, models.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}

	name := input.ResponderName
	if name == "" {
		name = conn.RecipientID
	}
	s.notify(ctx, conn.RequesterID, func(settings *models.NotificationSettings) error {
		if !settings.ConnectionRequests {
			return nil
		}
		_, err := s.notifications.NotifyConnectionAccepted(ctx, &notification.ConnectionAcceptedInput{
			UserID:       conn.RequesterID,
			AccepterName: name,
			ConnectionID: conn.ID,
		})
		return err
	})

	return conn, nil
}

func (s *service) Decline(ctx context.Context, input *RespondInput) (*models.Connection, error) {
	return s.respond(ctx, input, models.ConnectionStatusDeclined)
}

func (s *service) respond(ctx context.Context, input *RespondInput, status models.ConnectionStatus) (*models.Connection, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrEmptyConnectionID
	}

	current, err := s.get(ctx, input.ConnectionID)
	if err != nil {
		return nil, err
	}
	if input.UserID != "" && input.UserID != current.RecipientID {
		return nil, ErrNotRecipient
	}
	if current.Status != models.ConnectionStatusPending {
		return nil, ErrNotPending
	}

	return s.update(ctx, input.ConnectionID, map[string]any{"status": status})
}

// notify is best effort; failures are logged
func (s *service) notify(ctx context.Context, userID string, send func(*models.NotificationSettings) error) {
	if s.notifications == nil {
		return
	}

	settings, err := s.notifications.LoadSettings(ctx, &notification.LoadSettingsInput{UserID: userID})
	if err != nil {
		settings = models.DefaultNotificationSettings()
	}

	if err := send(settings); err != nil {
		s.logger.Warn("failed to create connection notification",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func (s *service) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil || input.ConnectionID == "" {
		return ErrEmptyConnectionID
	}

	err := s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionConnections,
		ID:         input.ConnectionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrConnectionNotFound
		}
		return fmt.Errorf("failed to remove connection: %w", err)
	}

	return nil
}

func (s *service) RemoveBetween(ctx context.Context, input *BetweenInput) error {
	conn, err := s.Between(ctx, input)
	if err != nil {
		return err
	}
	if conn == nil {
		return nil
	}

	return s.Remove(ctx, &RemoveInput{ConnectionID: conn.ID})
}

func (s *service) UserConnections(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{involving(input.UserID)}, connectionsLimit)
}

func (s *service) AcceptedConnections(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		involving(input.UserID),
		document.Equal("status", models.ConnectionStatusAccepted),
	}, connectionsLimit)
}

func (s *service) PendingRequests(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("recipientId", input.UserID),
		document.Equal("status", models.ConnectionStatusPending),
	}, requestsLimit)
}

func (s *service) SentRequests(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("requesterId", input.UserID),
		document.Equal("status", models.ConnectionStatusPending),
	}, requestsLimit)
}

func (s *service) Between(ctx context.Context, input *BetweenInput) (*models.Connection, error) {
	if input == nil || input.UserID == "" || input.OtherUserID == "" {
		return nil, ErrEmptyUserID
	}

	out, err := s.list(ctx, []document.Filter{document.Or(
		document.And(document.Equal("requesterId", input.UserID), document.Equal("recipientId", input.OtherUserID)),
		document.And(document.Equal("requesterId", input.OtherUserID), document.Equal("recipientId", input.UserID)),
	)}, 1)
	if err != nil {
		return nil, err
	}
	if len(out.Connections) == 0 {
		return nil, nil
	}
	return out.Connections[0], nil
}

func (s *service) AreConnected(ctx context.Context, input *BetweenInput) (bool, error) {
	conn, err := s.Between(ctx, input)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Status == models.ConnectionStatusAccepted, nil
}

func (s *service) ConnectionCount(ctx context.Context, input *UserInput) (int, error) {
	if input == nil || input.UserID == "" {
		return 0, ErrEmptyUserID
	}

	return s.count(ctx, []document.Filter{
		involving(input.UserID),
		document.Equal("status", models.ConnectionStatusAccepted),
	})
}

func (s *service) PendingCount(ctx context.Context, input *UserInput) (int, error) {
	if input == nil || input.UserID == "" {
		return 0, ErrEmptyUserID
	}

	return s.count(ctx, []document.Filter{
		document.Equal("recipientId", input.UserID),
		document.Equal("status", models.ConnectionStatusPending),
	})
}

func (s *service) get(ctx context.Context, connectionID string) (*models.Connection, error) {
	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionConnections,
		ID:         connectionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return document.Decode[models.Connection](doc)
}

func (s *service) update(ctx context.Context, connectionID string, fields map[string]any) (*models.Connection, error) {
	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionConnections,
		ID:         connectionID,
		Fields:     fields,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to update connection: %w", err)
	}

	return document.Decode[models.Connection](doc)
}

func (s *service) count(ctx context.Context, filters []document.Filter) (int, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionConnections,
		Filters:    filters,
		Limit:      1,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return out.Total, nil
}

func (s *service) list(ctx context.Context, filters []document.Filter, limit int) (*ListConnectionsOutput, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionConnections,
		Filters:    filters,
		Orders:     byNewest,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list connections", zap.Error(err))
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	connections, err := document.DecodeAll[models.Connection](out.Documents)
	if err != nil {
		return nil, err
	}

	return &ListConnectionsOutput{
		Connections: connections,
	}, nil
}
