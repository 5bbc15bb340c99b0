package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const flushTimeout = 5 * time.Second

// NATSFeedConfig holds configuration for the NATS feed
type NATSFeedConfig struct {
	Conn *nats.Conn

	// BufferSize is the per-subscription event buffer, defaults to 64
	BufferSize int

	Logger *zap.Logger
}

// NATSFeed carries change events on NATS subjects named like the channels
type NATSFeed struct {
	conn       *nats.Conn
	bufferSize int
	logger     *zap.Logger
}

// NewNATSFeed creates a feed on an established NATS connection
func NewNATSFeed(cfg *NATSFeedConfig) (*NATSFeed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Conn == nil {
		return nil, errors.New("nats connection cannot be nil")
	}

	return &NATSFeed{
		conn:       cfg.Conn,
		bufferSize: cfg.BufferSize,
		logger:     logging.OrNop(cfg.Logger),
	}, nil
}

// Publish sends the event on its collection and document subjects
func (f *NATSFeed) Publish(ctx context.Context, event *models.ChangeEvent) error {
	if event == nil || event.Collection == "" {
		return errors.New("event and collection cannot be empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	for _, subject := range channelsFor(event) {
		if err := f.conn.Publish(subject, payload); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", subject, err)
		}
	}

	return nil
}

// Subscribe registers a channel subscription and flushes it to the server
func (f *NATSFeed) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	if _, _, ok := ParseChannel(channel); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}

	msgs := make(chan *nats.Msg, f.bufferSize+defaultBufferSize)
	sub, err := f.conn.ChanSubscribe(channel, msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	if err := f.conn.FlushTimeout(flushTimeout); err != nil {
		_ = sub.Unsubscribe()
		return nil, fmt.Errorf("failed to flush subscription to %s: %w", channel, err)
	}

	p := newPump(f.bufferSize, f.logger.With(zap.String("subject", channel)))

	raw := make(chan []byte)
	go func() {
		defer close(raw)
		for {
			select {
			case msg := <-msgs:
				select {
				case raw <- msg.Data:
				case <-p.done:
					return
				}
			case <-p.done:
				return
			}
		}
	}()
	go p.run(raw)

	return &natsSubscription{sub: sub, pump: p}, nil
}

type natsSubscription struct {
	sub  *nats.Subscription
	pump *pump
}

func (s *natsSubscription) Events() <-chan *models.ChangeEvent {
	return s.pump.events
}

func (s *natsSubscription) Unsubscribe() error {
	s.pump.stop()
	if err := s.sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrBadSubscription) && !errors.Is(err, nats.ErrConnectionClosed) {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}
