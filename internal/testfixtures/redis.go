package testfixtures

import (
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/realtime"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/repositories/kv"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"
)

// Redis bundles a miniredis server with a connected client
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts miniredis for the duration of the test
func NewRedis(t testing.TB) *Redis {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return &Redis{Server: server, Client: client}
}

// Store is a Redis document store wired to a Redis change feed
type Store struct {
	document.Repository
	Feed  *realtime.RedisFeed
	Clock *Clock
	Redis *Redis
}

// NewStore creates a document store whose clock steps a second per write
func NewStore(t testing.TB) *Store {
	t.Helper()

	r := NewRedis(t)

	feed, err := realtime.NewRedisFeed(&realtime.RedisFeedConfig{
		RedisClient: r.Client,
		Logger:      zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("failed to create feed: %v", err)
	}

	clk := NewSteppingClock(ReferenceTime, time.Second)
	repo, err := document.NewRedis(&document.Config{
		RedisClient:   r.Client,
		Publisher:     feed,
		Clock:         clk,
		UUIDGenerator: NewIDGenerator("doc"),
		Logger:        zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("failed to create document store: %v", err)
	}

	return &Store{Repository: repo, Feed: feed, Clock: clk, Redis: r}
}

// NewKV creates a key-value repository on r
func NewKV(t testing.TB, r *Redis) kv.Repository {
	t.Helper()

	repo, err := kv.NewRedis(&kv.Config{RedisClient: r.Client})
	if err != nil {
		t.Fatalf("failed to create kv repository: %v", err)
	}
	return repo
}
