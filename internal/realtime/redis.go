package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisFeedConfig holds configuration for the Redis pub/sub feed
type RedisFeedConfig struct {
	RedisClient *redis.Client

	// BufferSize is the per-subscription event buffer, defaults to 64
	BufferSize int

	Logger *zap.Logger
}

// RedisFeed publishes and subscribes to change events over Redis pub/sub
type RedisFeed struct {
	client     *redis.Client
	bufferSize int
	logger     *zap.Logger
}

// NewRedisFeed creates a feed on an existing Redis client
func NewRedisFeed(cfg *RedisFeedConfig) (*RedisFeed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &RedisFeed{
		client:     cfg.RedisClient,
		bufferSize: cfg.BufferSize,
		logger:     logging.OrNop(cfg.Logger),
	}, nil
}

// Publish sends the event to its collection and document channels in one pipeline
func (f *RedisFeed) Publish(ctx context.Context, event *models.ChangeEvent) error {
	if event == nil || event.Collection == "" {
		return errors.New("event and collection cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	pipe := f.client.Pipeline()
	for _, channel := range channelsFor(event) {
		pipe.Publish(ctx, channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}

// Subscribe opens a pub/sub subscription on channel
func (f *RedisFeed) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	if _, _, ok := ParseChannel(channel); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}

	pubsub := f.client.Subscribe(ctx, channel)

	// Wait for the subscribe confirmation so no event published after return is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	p := newPump(f.bufferSize, f.logger.With(zap.String("channel", channel)))

	raw := make(chan []byte)
	go func() {
		defer close(raw)
		for msg := range pubsub.Channel() {
			select {
			case raw <- []byte(msg.Payload):
			case <-p.done:
				return
			}
		}
	}()
	go p.run(raw)

	return &redisSubscription{pubsub: pubsub, pump: p}, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	pump   *pump
}

func (s *redisSubscription) Events() <-chan *models.ChangeEvent {
	return s.pump.events
}

func (s *redisSubscription) Unsubscribe() error {
	s.pump.stop()
	if err := s.pubsub.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("failed to close subscription: %w", err)
	}
	return nil
}
