package discord

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/connection"
	connectionmocks "github.com/KirkDiggler/agendabot/internal/services/connection/mocks"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	notificationmocks "github.com/KirkDiggler/agendabot/internal/services/notification/mocks"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NetworkTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	connections   *connectionmocks.MockService
	notifications *notificationmocks.MockService

	connect *ConnectCommand
	inbox   *InboxCommand
}

func (s *NetworkTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.connections = connectionmocks.NewMockService(s.ctrl)
	s.notifications = notificationmocks.NewMockService(s.ctrl)

	s.connect = NewConnectCommand(s.connections)
	s.inbox = NewInboxCommand(s.notifications, testfixtures.NewClock(testfixtures.ReferenceTime))
}

func (s *NetworkTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNetworkTestSuite(t *testing.T) {
	suite.Run(t, new(NetworkTestSuite))
}

func (s *NetworkTestSuite) TestRequest() {
	s.connections.EXPECT().
		SendRequest(gomock.Any(), &connection.SendRequestInput{
			RequesterID:   "user-1",
			RecipientID:   "user-2",
			RequesterName: "user-1",
			Message:       "loved your talk",
		}).
		Return(&models.Connection{Meta: models.Meta{ID: "c1"}, RequesterID: "user-1", RecipientID: "user-2"}, nil)

	resp, err := s.connect.Handle(s.ctx, NewRequest("user-1", "request", map[string]string{
		"user":    "user-2",
		"message": "loved your talk",
	}))
	s.Require().NoError(err)
	s.Equal("Request `c1` sent to <@user-2>.", resp.Content)
}

func (s *NetworkTestSuite) TestRequestSelf() {
	s.connections.EXPECT().SendRequest(gomock.Any(), gomock.Any()).Return(nil, connection.ErrSelfConnection)

	_, err := s.connect.Handle(s.ctx, NewRequest("user-1", "request", map[string]string{"user": "user-1"}))
	s.ErrorIs(err, connection.ErrSelfConnection)
	s.Equal("You cannot connect with yourself.", userMessage(err))
}

func (s *NetworkTestSuite) TestAcceptAndDecline() {
	s.connections.EXPECT().
		Accept(gomock.Any(), &connection.RespondInput{ConnectionID: "c1", UserID: "user-2", ResponderName: "user-2"}).
		Return(&models.Connection{RequesterID: "user-1", Status: models.ConnectionStatusAccepted}, nil)

	resp, err := s.connect.Handle(s.ctx, NewRequest("user-2", "accept", map[string]string{"request": "c1"}))
	s.Require().NoError(err)
	s.Equal("Request from <@user-1> accepted.", resp.Content)

	s.connections.EXPECT().Decline(gomock.Any(), gomock.Any()).Return(nil, connection.ErrNotRecipient)

	_, err = s.connect.Handle(s.ctx, NewRequest("user-3", "decline", map[string]string{"request": "c1"}))
	s.ErrorIs(err, connection.ErrNotRecipient)
}

func (s *NetworkTestSuite) TestList() {
	in := &connection.UserInput{UserID: "user-1"}
	s.connections.EXPECT().AcceptedConnections(gomock.Any(), in).
		Return(&connection.ListConnectionsOutput{Connections: []*models.Connection{
			{RequesterID: "user-2", RecipientID: "user-1"},
		}}, nil)
	s.connections.EXPECT().PendingRequests(gomock.Any(), in).
		Return(&connection.ListConnectionsOutput{Connections: []*models.Connection{
			{Meta: models.Meta{ID: "c9"}, RequesterID: "user-3", RecipientID: "user-1", Message: "hi"},
		}}, nil)
	s.connections.EXPECT().SentRequests(gomock.Any(), in).
		Return(&connection.ListConnectionsOutput{}, nil)

	resp, err := s.connect.Handle(s.ctx, NewRequest("user-1", "list", nil))
	s.Require().NoError(err)

	embed := resp.Embeds[0]
	s.Require().Len(embed.Fields, 2)
	s.Equal("Connections (1)", embed.Fields[0].Name)
	s.Equal("<@user-2>", embed.Fields[0].Value)
	s.Equal("Waiting for you (1)", embed.Fields[1].Name)
	s.Equal("<@user-3> · `c9` · hi", embed.Fields[1].Value)
}

func (s *NetworkTestSuite) TestListEmpty() {
	s.connections.EXPECT().AcceptedConnections(gomock.Any(), gomock.Any()).Return(&connection.ListConnectionsOutput{}, nil)
	s.connections.EXPECT().PendingRequests(gomock.Any(), gomock.Any()).Return(&connection.ListConnectionsOutput{}, nil)
	s.connections.EXPECT().SentRequests(gomock.Any(), gomock.Any()).Return(&connection.ListConnectionsOutput{}, nil)

	resp, err := s.connect.Handle(s.ctx, NewRequest("user-1", "list", nil))
	s.Require().NoError(err)
	s.Empty(resp.Embeds[0].Fields)
}

func (s *NetworkTestSuite) TestInboxList() {
	now := testfixtures.ReferenceTime
	s.notifications.EXPECT().
		ListNotifications(gomock.Any(), &notification.ListNotificationsInput{UserID: "user-1", UnreadOnly: true, Limit: inboxLimit}).
		Return(&notification.ListNotificationsOutput{Notifications: []*models.Notification{
			{Meta: models.Meta{CreatedAt: now.Add(-5 * time.Minute)}, Title: "Session Reminder", Body: `"Keynote" starts soon`},
		}}, nil)
	s.notifications.EXPECT().UnreadCount(gomock.Any(), &notification.UnreadCountInput{UserID: "user-1"}).Return(1, nil)

	resp, err := s.inbox.Handle(s.ctx, NewRequest("user-1", "list", map[string]string{"unread": "true"}))
	s.Require().NoError(err)

	embed := resp.Embeds[0]
	s.Equal("1 unread", embed.Description)
	s.Require().Len(embed.Fields, 1)
	s.Equal("● Session Reminder", embed.Fields[0].Name)
	s.Equal("\"Keynote\" starts soon\n5m ago", embed.Fields[0].Value)
}

func (s *NetworkTestSuite) TestInboxReadAndClear() {
	s.notifications.EXPECT().MarkAllRead(gomock.Any(), &notification.MarkAllReadInput{UserID: "user-1"}).Return(nil)
	resp, err := s.inbox.Handle(s.ctx, NewRequest("user-1", "read", nil))
	s.Require().NoError(err)
	s.Equal("All notifications marked as read.", resp.Content)

	s.notifications.EXPECT().DeleteAllNotifications(gomock.Any(), &notification.DeleteAllNotificationsInput{UserID: "user-1"}).Return(nil)
	resp, err = s.inbox.Handle(s.ctx, NewRequest("user-1", "clear", nil))
	s.Require().NoError(err)
	s.Equal("Inbox cleared.", resp.Content)
}

func (s *NetworkTestSuite) TestInboxReminders() {
	s.notifications.EXPECT().
		LoadSettings(gomock.Any(), &notification.LoadSettingsInput{UserID: "user-1"}).
		Return(models.DefaultNotificationSettings(), nil)
	s.notifications.EXPECT().
		SaveSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *notification.SaveSettingsInput) error {
			s.False(in.Settings.SessionReminders)
			s.Equal([]int{30, 15, 5}, in.Settings.ReminderTimes)
			return nil
		})

	resp, err := s.inbox.Handle(s.ctx, NewRequest("user-1", "reminders", map[string]string{"enabled": "false"}))
	s.Require().NoError(err)
	s.Equal("Session reminders are off for new bookmarks.", resp.Content)
}

func (s *NetworkTestSuite) TestUnknownSubcommand() {
	for _, cmd := range []CommandHandler{s.connect, s.inbox} {
		_, err := cmd.Handle(s.ctx, NewRequest("user-1", "dance", nil))
		s.ErrorIs(err, ErrUnknownSubcommand, cmd.GetName())
	}
}
