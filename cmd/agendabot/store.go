package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/common/uuid"
	"github.com/KirkDiggler/agendabot/internal/config"
	"github.com/KirkDiggler/agendabot/internal/realtime"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// changeFeed is both ends of the change-event transport
type changeFeed interface {
	realtime.Publisher
	realtime.Feed
}

// backend is the storage every command shares
type backend struct {
	redis     *redis.Client
	nats      *nats.Conn
	feed      changeFeed
	documents document.Repository
}

// openBackend connects to Redis and the change feed and builds the document store
func openBackend(ctx context.Context, cfg *config.Config, clk clock.Clock, logger *zap.Logger) (*backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password.Value(),
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	b := &backend{redis: client}

	if cfg.NATS.Enabled {
		conn, err := nats.Connect(cfg.NATS.URL,
			nats.Name("agendabot"),
			nats.Timeout(connectTimeout),
			nats.MaxReconnects(-1),
			nats.ReconnectWait(time.Second))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, err)
		}
		b.nats = conn

		feed, err := realtime.NewNATSFeed(&realtime.NATSFeedConfig{Conn: conn, Logger: logger})
		if err != nil {
			b.Close()
			return nil, err
		}
		b.feed = feed
	} else {
		feed, err := realtime.NewRedisFeed(&realtime.RedisFeedConfig{RedisClient: client, Logger: logger})
		if err != nil {
			b.Close()
			return nil, err
		}
		b.feed = feed
	}

	documents, err := document.NewRedis(&document.Config{
		RedisClient:   client,
		Publisher:     b.feed,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}
	b.documents = documents

	logger.Info("connected to backend",
		zap.String("redis_addr", cfg.Redis.Addr),
		zap.Bool("nats", cfg.NATS.Enabled))
	return b, nil
}

// Ping reports whether Redis is reachable
func (b *backend) Ping(ctx context.Context) error {
	return b.redis.Ping(ctx).Err()
}

// Close drains NATS and closes Redis
func (b *backend) Close() {
	if b.nats != nil {
		_ = b.nats.Drain()
	}
	_ = b.redis.Close()
}
