package reminder

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/reminder Service

// Service schedules session reminders through the platform scheduler
type Service interface {
	// ScheduleSessionReminders registers one reminder per lead-time whose fire time is still ahead
	ScheduleSessionReminders(ctx context.Context, input *ScheduleSessionRemindersInput) (*ScheduleSessionRemindersOutput, error)

	// CancelReminders unregisters previously scheduled reminders
	CancelReminders(ctx context.Context, input *CancelRemindersInput) error
}
