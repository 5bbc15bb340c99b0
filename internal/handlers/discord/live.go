package discord

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/realtime"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	DefaultLiveTTL         = 2 * time.Hour
	DefaultMaxLiveMessages = 20
)

// ErrLiveBoardClosed is returned by Watch after Close
var ErrLiveBoardClosed = errors.New("live board is closed")

// LiveBoardConfig holds configuration for a LiveBoard
type LiveBoardConfig struct {
	Feed      realtime.Feed
	Messenger Messenger

	// TTL is how long a message stays live, DefaultLiveTTL when zero
	TTL time.Duration

	// MaxMessages caps concurrently live messages; the oldest is released first
	MaxMessages int

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// LiveBoard keeps posted messages in sync with a collection by editing them
// whenever the watched list changes
type LiveBoard struct {
	feed      realtime.Feed
	messenger Messenger
	ttl       time.Duration
	max       int
	logger    *zap.Logger
	metrics   *metrics.Metrics

	mu      sync.Mutex
	entries map[string]*liveEntry
	order   []string
	closed  bool
}

type liveEntry struct {
	stop  func()
	timer *time.Timer
}

// LiveSpec describes what a live message shows
type LiveSpec[T any] struct {
	Collection string
	TargetID   string
	ChannelID  string
	MessageID  string

	Load       realtime.Loader[T]
	Operations []models.ChangeOperation
	Render     func(targetID string, items []T) *discordgo.MessageEmbed
}

// NewLiveBoard creates an empty board
func NewLiveBoard(cfg *LiveBoardConfig) (*LiveBoard, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Feed == nil {
		return nil, errors.New("feed cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultLiveTTL
	}
	max := cfg.MaxMessages
	if max <= 0 {
		max = DefaultMaxLiveMessages
	}

	return &LiveBoard{
		feed:      cfg.Feed,
		messenger: cfg.Messenger,
		ttl:       ttl,
		max:       max,
		logger:    logging.OrNop(cfg.Logger),
		metrics:   cfg.Metrics,
		entries:   make(map[string]*liveEntry),
	}, nil
}

// Watch starts editing spec.MessageID on every change of the target's list.
// It is a function rather than a method because the element type varies.
func Watch[T any](ctx context.Context, b *LiveBoard, spec *LiveSpec[T]) error {
	if spec == nil || spec.MessageID == "" || spec.TargetID == "" {
		return errors.New("live message needs a target and a message")
	}
	if spec.Render == nil {
		return errors.New("live message needs a renderer")
	}

	logger := b.logger.With(
		zap.String("collection", spec.Collection),
		zap.String("target", spec.TargetID),
		zap.String("message_id", spec.MessageID))

	w, err := realtime.NewWatcher(&realtime.WatcherConfig[T]{
		Feed:       b.feed,
		Collection: spec.Collection,
		Load:       spec.Load,
		Operations: spec.Operations,
		OnChange: func(targetID string, items []T) {
			if err := b.messenger.Edit(spec.ChannelID, spec.MessageID, spec.Render(targetID, items)); err != nil {
				logger.Warn("failed to update live message, releasing it", zap.Error(err))
				go b.Release(spec.MessageID)
			}
		},
		Logger:  b.logger,
		Metrics: b.metrics,
	})
	if err != nil {
		return err
	}

	// Registered first so a failed edit during the initial load can release it
	if !b.add(spec.MessageID, w.Stop) {
		return ErrLiveBoardClosed
	}
	if err := w.SetTarget(ctx, spec.TargetID); err != nil {
		b.Release(spec.MessageID)
		return err
	}
	if !w.Subscribed() {
		logger.Warn("live message will not update", zap.Error(w.Err()))
	}

	logger.Debug("live message started")
	return nil
}

// add registers a live message; it reports false once the board is closed
func (b *LiveBoard) add(messageID string, stop func()) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}

	var evicted []func()
	if prev, ok := b.entries[messageID]; ok {
		evicted = append(evicted, b.removeLocked(messageID, prev))
	}
	for len(b.order) >= b.max {
		oldest := b.order[0]
		evicted = append(evicted, b.removeLocked(oldest, b.entries[oldest]))
	}

	b.entries[messageID] = &liveEntry{
		stop:  stop,
		timer: time.AfterFunc(b.ttl, func() { b.Release(messageID) }),
	}
	b.order = append(b.order, messageID)
	b.mu.Unlock()

	for _, fn := range evicted {
		fn()
	}
	return true
}

// removeLocked drops the entry and returns its stop function
func (b *LiveBoard) removeLocked(messageID string, entry *liveEntry) func() {
	delete(b.entries, messageID)
	for i, id := range b.order {
		if id == messageID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	entry.timer.Stop()
	return entry.stop
}

// Release stops updating a message; unknown IDs are ignored
func (b *LiveBoard) Release(messageID string) {
	b.mu.Lock()
	entry, ok := b.entries[messageID]
	if !ok {
		b.mu.Unlock()
		return
	}
	stop := b.removeLocked(messageID, entry)
	b.mu.Unlock()

	stop()
}

// Live returns the IDs of messages currently kept up to date, oldest first
func (b *LiveBoard) Live() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Close releases every live message and rejects new ones
func (b *LiveBoard) Close() {
	b.mu.Lock()
	b.closed = true
	var stops []func()
	for id, entry := range b.entries {
		stops = append(stops, b.removeLocked(id, entry))
	}
	b.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}
