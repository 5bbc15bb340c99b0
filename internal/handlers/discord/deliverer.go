package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"go.uber.org/zap"
)

// ReminderDeliverer sends fired reminders to their recipient as a DM and,
// when an inbox is configured, records them there too.
// Delivery outcomes are counted by the scheduler.
type ReminderDeliverer struct {
	messenger Messenger
	inbox     notification.Service
	logger    *zap.Logger
}

// NewReminderDeliverer creates a deliverer posting through messenger.
// inbox may be nil.
func NewReminderDeliverer(messenger Messenger, inbox notification.Service, logger *zap.Logger) (*ReminderDeliverer, error) {
	if messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	return &ReminderDeliverer{
		messenger: messenger,
		inbox:     inbox,
		logger:    logging.OrNop(logger),
	}, nil
}

// Deliver implements scheduler.Deliverer
func (d *ReminderDeliverer) Deliver(ctx context.Context, payload *scheduler.Payload) error {
	if payload == nil || payload.UserID == "" {
		return errors.New("reminder has no recipient")
	}

	if d.inbox != nil {
		// inbox failures are logged only
		if _, err := d.inbox.NotifySessionReminder(ctx, &notification.SessionReminderInput{
			UserID:       payload.UserID,
			SessionID:    payload.SessionID,
			SessionTitle: payload.Body,
		}); err != nil {
			d.logger.Warn("failed to record reminder in inbox",
				zap.String("user_id", payload.UserID),
				zap.Error(err))
		}
	}

	if err := d.messenger.SendDirect(payload.UserID, renderReminder(payload)); err != nil {
		return fmt.Errorf("failed to DM reminder to %s: %w", payload.UserID, err)
	}

	d.logger.Debug("reminder delivered",
		zap.String("user_id", payload.UserID),
		zap.String("session_id", payload.SessionID),
		zap.Int("lead_minutes", payload.ReminderMinutes))
	return nil
}
