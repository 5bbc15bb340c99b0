package scheduler

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/common/uuid"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"go.uber.org/zap"
)

const deliverTimeout = 30 * time.Second

// Config holds configuration for the timer scheduler
type Config struct {
	Deliverer     Deliverer
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
}

// TimerScheduler fires payloads from in-process runtime timers.
// Pending notifications do not survive a restart.
type TimerScheduler struct {
	deliverer     Deliverer
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        *zap.Logger
	metrics       *metrics.Metrics

	mu      sync.Mutex
	timers  map[Handle]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// New creates a timer scheduler
func New(cfg *Config) (*TimerScheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Deliverer == nil {
		return nil, errors.New("deliverer cannot be nil")
	}

	s := &TimerScheduler{
		deliverer:     cfg.Deliverer,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logging.OrNop(cfg.Logger),
		metrics:       cfg.Metrics,
		timers:        make(map[Handle]*time.Timer),
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.uuidGenerator == nil {
		s.uuidGenerator = uuid.New()
	}

	return s, nil
}

func (s *TimerScheduler) ScheduleAt(ctx context.Context, fireAt time.Time, payload *Payload) (Handle, error) {
	if payload == nil {
		return "", errors.New("payload cannot be nil")
	}

	delay := fireAt.Sub(s.clock.Now())
	if delay <= 0 {
		return "", ErrFireTimeInPast
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return "", ErrStopped
	}

	handle := Handle(s.uuidGenerator.NewID())
	s.timers[handle] = time.AfterFunc(delay, func() {
		s.fire(handle, payload)
	})

	s.logger.Debug("scheduled notification",
		zap.String("handle", string(handle)),
		zap.String("session_id", payload.SessionID),
		zap.Time("fire_at", fireAt))

	return handle, nil
}

func (s *TimerScheduler) Cancel(ctx context.Context, handle Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[handle]
	if !ok {
		return ErrHandleNotFound
	}

	timer.Stop()
	delete(s.timers, handle)

	return nil
}

// Pending returns the handles that have not fired or been cancelled
func (s *TimerScheduler) Pending() []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles := make([]Handle, 0, len(s.timers))
	for handle := range s.timers {
		handles = append(handles, handle)
	}
	slices.Sort(handles)
	return handles
}

// Stop cancels every pending notification and waits for in-flight deliveries
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for handle, timer := range s.timers {
		timer.Stop()
		delete(s.timers, handle)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *TimerScheduler) fire(handle Handle, payload *Payload) {
	s.mu.Lock()
	if _, ok := s.timers[handle]; !ok {
		// Cancelled after the timer had already started
		s.mu.Unlock()
		return
	}
	delete(s.timers, handle)
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	if err := s.deliverer.Deliver(ctx, payload); err != nil {
		s.metrics.ReminderDelivered("error")
		s.logger.Error("failed to deliver notification",
			zap.String("handle", string(handle)),
			zap.String("user_id", payload.UserID),
			zap.String("session_id", payload.SessionID),
			zap.Error(err))
		return
	}

	s.metrics.ReminderDelivered("ok")
}
