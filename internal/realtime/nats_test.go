package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func startNATSServer(t *testing.T) *natsserver.Server {
	t.Helper()

	server, err := natsserver.NewServer(&natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	})
	require.NoError(t, err)

	go server.Start()
	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})
	return server
}

func TestNATSFeedPublishSubscribe(t *testing.T) {
	server := startNATSServer(t)

	conn, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	feed, err := NewNATSFeed(&NATSFeedConfig{
		Conn:   conn,
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	ctx := context.Background()
	sub, err := feed.Subscribe(ctx, CollectionChannel("checkins"))
	require.NoError(t, err)

	err = feed.Publish(ctx, &models.ChangeEvent{
		Operation:  models.ChangeOperationCreate,
		Collection: "checkins",
		DocumentID: "c1",
	})
	require.NoError(t, err)

	select {
	case event := <-sub.Events():
		assert.Equal(t, models.ChangeOperationCreate, event.Operation)
		assert.Equal(t, "c1", event.DocumentID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	require.NoError(t, sub.Unsubscribe())
	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestNewNATSFeedValidation(t *testing.T) {
	_, err := NewNATSFeed(nil)
	assert.Error(t, err)

	_, err = NewNATSFeed(&NATSFeedConfig{})
	assert.Error(t, err)
}
