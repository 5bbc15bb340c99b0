package reminder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	scheduler scheduler.Scheduler
	clock     clock.Clock
	leadTimes []int
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// New creates a new reminder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	s := &service{
		scheduler: cfg.Scheduler,
		clock:     cfg.Clock,
		leadTimes: cfg.LeadTimes,
		logger:    logging.OrNop(cfg.Logger),
		metrics:   cfg.Metrics,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if len(s.leadTimes) == 0 {
		s.leadTimes = DefaultLeadTimes
	}

	return s, nil
}

// ScheduleSessionReminders computes fireAt = start - lead for every lead-time
// and registers those still in the future. Lead-times are independent: a
// past or failed one never prevents the others.
func (s *service) ScheduleSessionReminders(ctx context.Context, input *ScheduleSessionRemindersInput) (*ScheduleSessionRemindersOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySession
	}
	if input.UserID == "" {
		return nil, ErrEmptyUser
	}
	if input.StartTime.IsZero() {
		return nil, ErrNoStartTime
	}

	leadTimes := input.LeadTimes
	if leadTimes == nil {
		leadTimes = s.leadTimes
	}

	now := s.clock.Now()
	out := &ScheduleSessionRemindersOutput{}
	var errs []error
	seen := make(map[int]bool, len(leadTimes))

	for _, lead := range leadTimes {
		if lead < 0 || seen[lead] {
			continue
		}
		seen[lead] = true

		fireAt := input.StartTime.Add(-time.Duration(lead) * time.Minute)
		if !fireAt.After(now) {
			out.Skipped = append(out.Skipped, lead)
			s.metrics.ReminderSkipped()
			continue
		}

		handle, err := s.scheduler.ScheduleAt(ctx, fireAt, &scheduler.Payload{
			Type:            models.NotificationTypeSessionReminder,
			UserID:          input.UserID,
			SessionID:       input.SessionID,
			ReminderMinutes: lead,
			Title:           fmt.Sprintf("Session Starting in %d Minutes", lead),
			Body:            input.SessionTitle,
		})
		if err != nil {
			if errors.Is(err, scheduler.ErrFireTimeInPast) {
				// The scheduler's clock moved past fireAt since we computed it
				out.Skipped = append(out.Skipped, lead)
				s.metrics.ReminderSkipped()
				continue
			}
			s.logger.Warn("failed to schedule reminder",
				zap.String("session_id", input.SessionID),
				zap.Int("lead_minutes", lead),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("lead %d: %w", lead, err))
			continue
		}

		out.Scheduled = append(out.Scheduled, ScheduledReminder{
			LeadMinutes: lead,
			FireAt:      fireAt,
			Handle:      handle,
		})
		s.metrics.ReminderScheduled()
	}

	slices.SortFunc(out.Scheduled, func(a, b ScheduledReminder) int {
		return a.FireAt.Compare(b.FireAt)
	})

	s.logger.Debug("scheduled session reminders",
		zap.String("user_id", input.UserID),
		zap.String("session_id", input.SessionID),
		zap.Int("scheduled", len(out.Scheduled)),
		zap.Ints("skipped", out.Skipped))

	if len(errs) > 0 {
		return out, fmt.Errorf("failed to schedule some reminders: %w", errors.Join(errs...))
	}
	return out, nil
}

// CancelReminders cancels every handle; handles that already fired are ignored
func (s *service) CancelReminders(ctx context.Context, input *CancelRemindersInput) error {
	if input == nil {
		return nil
	}

	var errs []error
	for _, handle := range input.Handles {
		err := s.scheduler.Cancel(ctx, handle)
		if err == nil {
			s.metrics.ReminderCancelled()
			continue
		}
		if errors.Is(err, scheduler.ErrHandleNotFound) {
			continue
		}
		errs = append(errs, fmt.Errorf("handle %s: %w", handle, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to cancel reminders: %w", errors.Join(errs...))
	}
	return nil
}
