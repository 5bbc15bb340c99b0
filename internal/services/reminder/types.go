package reminder

import (
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"go.uber.org/zap"
)

// DefaultLeadTimes are the minutes before start at which reminders fire
var DefaultLeadTimes = []int{30, 15, 5}

// Config holds configuration for the reminder service
type Config struct {
	Scheduler scheduler.Scheduler
	Clock     clock.Clock

	// LeadTimes overrides DefaultLeadTimes when a request carries none
	LeadTimes []int

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// ScheduleSessionRemindersInput describes the session to remind a user about
type ScheduleSessionRemindersInput struct {
	UserID       string
	SessionID    string
	SessionTitle string
	StartTime    time.Time

	// LeadTimes in minutes; nil uses the configured defaults and an
	// empty list schedules nothing
	LeadTimes []int
}

// ScheduledReminder is one registered reminder
type ScheduledReminder struct {
	LeadMinutes int
	FireAt      time.Time
	Handle      scheduler.Handle
}

// ScheduleSessionRemindersOutput reports what was scheduled and what was skipped
type ScheduleSessionRemindersOutput struct {
	Scheduled []ScheduledReminder

	// Skipped are lead-times whose fire time was not in the future
	Skipped []int
}

// Handles returns the handles of every scheduled reminder
func (o *ScheduleSessionRemindersOutput) Handles() []scheduler.Handle {
	handles := make([]scheduler.Handle, len(o.Scheduled))
	for i, r := range o.Scheduled {
		handles[i] = r.Handle
	}
	return handles
}

// CancelRemindersInput lists the reminders to cancel
type CancelRemindersInput struct {
	Handles []scheduler.Handle
}
