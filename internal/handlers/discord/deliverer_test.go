package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/agendabot/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	notificationmocks "github.com/KirkDiggler/agendabot/internal/services/notification/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func TestReminderDeliverer(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)

	d, err := NewReminderDeliverer(messenger, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	payload := &scheduler.Payload{
		Type:            models.NotificationTypeSessionReminder,
		UserID:          "user-1",
		SessionID:       "s1",
		ReminderMinutes: 15,
		Title:           "Session Starting in 15 Minutes",
		Body:            "Keynote",
	}

	messenger.EXPECT().
		SendDirect("user-1", gomock.Any()).
		DoAndReturn(func(_ string, embed *discordgo.MessageEmbed) error {
			assert.Equal(t, "Session Starting in 15 Minutes", embed.Title)
			assert.Equal(t, "Keynote", embed.Description)
			return nil
		})

	assert.NoError(t, d.Deliver(context.Background(), payload))

	messenger.EXPECT().SendDirect("user-1", gomock.Any()).Return(errors.New("cannot DM user"))
	assert.Error(t, d.Deliver(context.Background(), payload))

	assert.Error(t, d.Deliver(context.Background(), &scheduler.Payload{SessionID: "s1"}))
}

func TestReminderDelivererRecordsInbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	inbox := notificationmocks.NewMockService(ctrl)

	d, err := NewReminderDeliverer(messenger, inbox, zaptest.NewLogger(t))
	require.NoError(t, err)

	payload := &scheduler.Payload{
		Type:            models.NotificationTypeSessionReminder,
		UserID:          "user-1",
		SessionID:       "s1",
		ReminderMinutes: 5,
		Title:           "Session Starting in 5 Minutes",
		Body:            "Keynote",
	}

	inbox.EXPECT().
		NotifySessionReminder(gomock.Any(), &notification.SessionReminderInput{
			UserID:       "user-1",
			SessionID:    "s1",
			SessionTitle: "Keynote",
		}).
		Return(&models.Notification{}, nil)
	messenger.EXPECT().SendDirect("user-1", gomock.Any()).Return(nil)
	assert.NoError(t, d.Deliver(context.Background(), payload))

	// inbox failures do not fail delivery
	inbox.EXPECT().NotifySessionReminder(gomock.Any(), gomock.Any()).Return(nil, errors.New("store down"))
	messenger.EXPECT().SendDirect("user-1", gomock.Any()).Return(nil)
	assert.NoError(t, d.Deliver(context.Background(), payload))
}

func TestNewReminderDelivererValidation(t *testing.T) {
	_, err := NewReminderDeliverer(nil, nil, nil)
	assert.Error(t, err)
}

var _ scheduler.Deliverer = (*ReminderDeliverer)(nil)
