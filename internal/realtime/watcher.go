package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"go.uber.org/zap"
)

// Loader fetches the full list for a target, e.g. every poll of a session
type Loader[T any] func(ctx context.Context, targetID string) ([]T, error)

// WatcherConfig holds configuration for a Watcher
type WatcherConfig[T any] struct {
	// Feed delivers change events for Collection
	Feed Feed

	// Collection is the watched collection
	Collection string

	// Load reloads the list for the current target
	Load Loader[T]

	// Operations restricts which change events trigger a reload; empty means all
	Operations []models.ChangeOperation

	// OnChange is called with every successfully applied snapshot. It runs on
	// the listener goroutine and must not call Stop or SetTarget.
	OnChange func(targetID string, items []T)

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Watcher keeps a list for one target in sync with a collection change-feed.
//
// Every change event that passes the operation filter triggers a full reload.
// Loads started for an earlier target, or older than the last applied load,
// are discarded.
type Watcher[T any] struct {
	feed       Feed
	collection string
	load       Loader[T]
	operations map[models.ChangeOperation]bool
	onChange   func(targetID string, items []T)
	logger     *zap.Logger
	metrics    *metrics.Metrics

	mu          sync.Mutex
	target      string
	generation  uint64
	loadSeq     uint64
	appliedSeq  uint64
	cancel      context.CancelFunc
	sub         Subscription
	listenDone  chan struct{}
	snapshot    []T
	subscribed  bool
	subscribeErr error
	loadErr     error
}

// NewWatcher creates an inactive watcher
func NewWatcher[T any](cfg *WatcherConfig[T]) (*Watcher[T], error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Feed == nil {
		return nil, errors.New("feed cannot be nil")
	}
	if cfg.Collection == "" {
		return nil, errors.New("collection cannot be empty")
	}
	if cfg.Load == nil {
		return nil, errors.New("loader cannot be nil")
	}

	var operations map[models.ChangeOperation]bool
	if len(cfg.Operations) > 0 {
		operations = make(map[models.ChangeOperation]bool, len(cfg.Operations))
		for _, op := range cfg.Operations {
			operations[op] = true
		}
	}

	return &Watcher[T]{
		feed:       cfg.Feed,
		collection: cfg.Collection,
		load:       cfg.Load,
		operations: operations,
		onChange:   cfg.OnChange,
		logger:     logging.OrNop(cfg.Logger).With(zap.String("collection", cfg.Collection)),
		metrics:    cfg.Metrics,
	}, nil
}

// SetTarget activates the watcher for targetID, tearing down any previous
// subscription first. An empty targetID leaves the watcher inactive.
//
// A subscribe failure is not returned; it is exposed through Err and
// Subscribed while the initial load still runs. The returned error is the
// initial load error, if any.
func (w *Watcher[T]) SetTarget(ctx context.Context, targetID string) error {
	w.mu.Lock()
	if targetID != "" && targetID == w.target && w.subscribed {
		w.mu.Unlock()
		return nil
	}

	prevDone := w.teardownLocked()
	w.target = targetID
	w.generation++
	gen := w.generation
	w.snapshot = nil
	w.subscribeErr = nil
	w.loadErr = nil

	if targetID == "" {
		w.mu.Unlock()
		waitFor(prevDone)
		return nil
	}

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancel = cancel
	w.mu.Unlock()
	waitFor(prevDone)

	// Subscribe before the first load so changes made during the load are seen
	sub, err := w.feed.Subscribe(watchCtx, CollectionChannel(w.collection))

	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		if sub != nil {
			_ = sub.Unsubscribe()
		}
		return nil
	}
	if err != nil {
		w.subscribeErr = fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
		w.mu.Unlock()

		w.metrics.RealtimeSubscribeFailed(w.collection)
		w.logger.Warn("change-feed subscription failed, manual refresh only",
			zap.String("target", targetID),
			zap.Error(err))
	} else {
		done := make(chan struct{})
		w.sub = sub
		w.subscribed = true
		w.listenDone = done
		w.mu.Unlock()

		go w.listen(watchCtx, gen, sub, done)
	}

	return w.reload(watchCtx, gen)
}

// Stop tears down the subscription and deactivates the watcher.
// The last snapshot is discarded.
func (w *Watcher[T]) Stop() {
	w.mu.Lock()
	prevDone := w.teardownLocked()
	w.target = ""
	w.generation++
	w.snapshot = nil
	w.mu.Unlock()

	waitFor(prevDone)
}

// Refresh reloads the current target regardless of subscription state
func (w *Watcher[T]) Refresh(ctx context.Context) error {
	w.mu.Lock()
	if w.target == "" {
		w.mu.Unlock()
		return nil
	}
	gen := w.generation
	w.mu.Unlock()

	return w.reload(ctx, gen)
}

// Target returns the current target, empty when inactive
func (w *Watcher[T]) Target() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// Snapshot returns a copy of the last successfully loaded list
func (w *Watcher[T]) Snapshot() []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.snapshot == nil {
		return nil
	}
	out := make([]T, len(w.snapshot))
	copy(out, w.snapshot)
	return out
}

// Subscribed reports whether a change-feed subscription is live
func (w *Watcher[T]) Subscribed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.subscribed
}

// Err returns the subscribe failure, or else the last load failure
func (w *Watcher[T]) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.subscribeErr != nil {
		return w.subscribeErr
	}
	return w.loadErr
}

// teardownLocked cancels in-flight work and releases the subscription.
// The returned channel closes once the listener goroutine has exited.
func (w *Watcher[T]) teardownLocked() chan struct{} {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.sub != nil {
		if err := w.sub.Unsubscribe(); err != nil {
			w.logger.Warn("failed to unsubscribe", zap.String("target", w.target), zap.Error(err))
		}
		w.sub = nil
	}
	w.subscribed = false

	done := w.listenDone
	w.listenDone = nil
	return done
}

func (w *Watcher[T]) listen(ctx context.Context, gen uint64, sub Subscription, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if w.operations != nil && !w.operations[event.Operation] {
				continue
			}

			w.metrics.RealtimeReloaded(w.collection)
			if err := w.reload(ctx, gen); err != nil {
				w.logger.Warn("reload after change event failed",
					zap.String("operation", string(event.Operation)),
					zap.String("document_id", event.DocumentID),
					zap.Error(err))
			}
		}
	}
}

// reload loads the list and applies it only if gen is still current and no
// newer load has been applied meanwhile
func (w *Watcher[T]) reload(ctx context.Context, gen uint64) error {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return nil
	}
	target := w.target
	w.loadSeq++
	seq := w.loadSeq
	w.mu.Unlock()

	items, err := w.load(ctx, target)

	w.mu.Lock()
	if gen != w.generation || seq < w.appliedSeq {
		w.mu.Unlock()
		return nil
	}
	if err != nil {
		w.loadErr = err
		w.mu.Unlock()
		return fmt.Errorf("failed to load %s for %s: %w", w.collection, target, err)
	}
	w.appliedSeq = seq
	w.loadErr = nil
	if items == nil {
		items = []T{}
	}
	w.snapshot = items
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange(target, items)
	}
	return nil
}

func waitFor(done chan struct{}) {
	if done != nil {
		<-done
	}
}
