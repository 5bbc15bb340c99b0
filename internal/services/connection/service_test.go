package connection

import (
	"context"
	"testing"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/stretchr/testify/suite"
)

type ConnectionServiceTestSuite struct {
	suite.Suite
	store         *testfixtures.Store
	notifications notification.Service
	service       Service
	ctx           context.Context
}

func (s *ConnectionServiceTestSuite) SetupTest() {
	s.store = testfixtures.NewStore(s.T())

	notifications, err := notification.New(&notification.Config{
		DocumentRepo: s.store,
		KVRepo:       testfixtures.NewKV(s.T(), s.store.Redis),
	})
	s.Require().NoError(err)
	s.notifications = notifications

	svc, err := New(&Config{
		DocumentRepo:  s.store,
		Notifications: notifications,
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestConnectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectionServiceTestSuite))
}

func (s *ConnectionServiceTestSuite) send(from, to string) *models.Connection {
	conn, err := s.service.SendRequest(s.ctx, &SendRequestInput{RequesterID: from, RecipientID: to, RequesterName: from + "-name"})
	s.Require().NoError(err)
	return conn
}

func (s *ConnectionServiceTestSuite) inbox(userID string) []*models.Notification {
	out, err := s.notifications.ListNotifications(s.ctx, &notification.ListNotificationsInput{UserID: userID})
	s.Require().NoError(err)
	return out.Notifications
}

func (s *ConnectionServiceTestSuite) TestSendRequestNotifiesRecipient() {
	conn := s.send("ada", "bob")

	s.Equal(models.ConnectionStatusPending, conn.Status)

	inbox := s.inbox("bob")
	s.Require().Len(inbox, 1)
	s.Equal("New Connection Request", inbox[0].Title)
	s.Equal("ada-name wants to connect with you", inbox[0].Body)
	s.Equal(conn.ID, inbox[0].Data["connectionId"])
}

func (s *ConnectionServiceTestSuite) TestSendRequestRespectsSettings() {
	settings := models.DefaultNotificationSettings()
	settings.ConnectionRequests = false
	s.Require().NoError(s.notifications.SaveSettings(s.ctx, &notification.SaveSettingsInput{UserID: "bob", Settings: settings}))

	s.send("ada", "bob")
	s.Empty(s.inbox("bob"))
}

func (s *ConnectionServiceTestSuite) TestSendRequestRejectsSelfAndDuplicates() {
	_, err := s.service.SendRequest(s.ctx, &SendRequestInput{RequesterID: "ada", RecipientID: "ada"})
	s.ErrorIs(err, ErrSelfConnection)

	s.send("ada", "bob")
	_, err = s.service.SendRequest(s.ctx, &SendRequestInput{RequesterID: "ada", RecipientID: "bob"})
	s.ErrorIs(err, ErrAlreadyConnected)
	_, err = s.service.SendRequest(s.ctx, &SendRequestInput{RequesterID: "bob", RecipientID: "ada"})
	s.ErrorIs(err, ErrAlreadyConnected)
}

func (s *ConnectionServiceTestSuite) TestAcceptFlow() {
	conn := s.send("ada", "bob")

	_, err := s.service.Accept(s.ctx, &RespondInput{ConnectionID: conn.ID, UserID: "ada"})
	s.ErrorIs(err, ErrNotRecipient)

	accepted, err := s.service.Accept(s.ctx, &RespondInput{ConnectionID: conn.ID, UserID: "bob", ResponderName: "Bob"})
	s.Require().NoError(err)
	s.Equal(models.ConnectionStatusAccepted, accepted.Status)

	_, err = s.service.Accept(s.ctx, &RespondInput{ConnectionID: conn.ID, UserID: "bob"})
	s.ErrorIs(err, ErrNotPending)

	inbox := s.inbox("ada")
	s.Require().Len(inbox, 1)
	s.Equal("Bob accepted your connection request", inbox[0].Body)

	connected, err := s.service.AreConnected(s.ctx, &BetweenInput{UserID: "bob", OtherUserID: "ada"})
	s.Require().NoError(err)
	s.True(connected)

	count, err := s.service.ConnectionCount(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ConnectionServiceTestSuite) TestDeclinedRequestCanBeResent() {
	conn := s.send("ada", "bob")
	_, err := s.service.Decline(s.ctx, &RespondInput{ConnectionID: conn.ID, UserID: "bob"})
	s.Require().NoError(err)

	connected, err := s.service.AreConnected(s.ctx, &BetweenInput{UserID: "ada", OtherUserID: "bob"})
	s.Require().NoError(err)
	s.False(connected)

	reopened := s.send("bob", "ada")
	s.Equal(conn.ID, reopened.ID)
	s.Equal("bob", reopened.RequesterID)
	s.Equal(models.ConnectionStatusPending, reopened.Status)
}

func (s *ConnectionServiceTestSuite) TestListings() {
	s.send("ada", "bob")
	s.send("carl", "ada")
	accepted := s.send("ada", "dee")
	_, err := s.service.Accept(s.ctx, &RespondInput{ConnectionID: accepted.ID})
	s.Require().NoError(err)
	s.send("bob", "carl")

	all, err := s.service.UserConnections(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Len(all.Connections, 3)

	acc, err := s.service.AcceptedConnections(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Require().Len(acc.Connections, 1)
	s.Equal("dee", acc.Connections[0].OtherParty("ada"))

	pending, err := s.service.PendingRequests(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Require().Len(pending.Connections, 1)
	s.Equal("carl", pending.Connections[0].RequesterID)

	sent, err := s.service.SentRequests(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Require().Len(sent.Connections, 1)
	s.Equal("bob", sent.Connections[0].RecipientID)

	count, err := s.service.PendingCount(s.ctx, &UserInput{UserID: "ada"})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ConnectionServiceTestSuite) TestRemove() {
	conn := s.send("ada", "bob")

	s.Require().NoError(s.service.RemoveBetween(s.ctx, &BetweenInput{UserID: "bob", OtherUserID: "ada"}))
	between, err := s.service.Between(s.ctx, &BetweenInput{UserID: "ada", OtherUserID: "bob"})
	s.Require().NoError(err)
	s.Nil(between)

	s.ErrorIs(s.service.Remove(s.ctx, &RemoveInput{ConnectionID: conn.ID}), ErrConnectionNotFound)
	s.NoError(s.service.RemoveBetween(s.ctx, &BetweenInput{UserID: "ada", OtherUserID: "bob"}))
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err != ErrNilConfig {
		t.Errorf("New(nil) = %v, want ErrNilConfig", err)
	}
	if _, err := New(&Config{}); err != ErrNilDocumentRepo {
		t.Errorf("New(empty) = %v, want ErrNilDocumentRepo", err)
	}
}
