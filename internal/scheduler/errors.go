package scheduler

// SchedulerError is a scheduling condition
type SchedulerError string

func (e SchedulerError) Error() string {
	return string(e)
}

const (
	// ErrFireTimeInPast is returned when asked to schedule at or before now
	ErrFireTimeInPast SchedulerError = "fire time is not in the future"

	// ErrHandleNotFound is returned when cancelling a handle that already fired or never existed
	ErrHandleNotFound SchedulerError = "scheduled notification not found"

	// ErrStopped is returned after Stop
	ErrStopped SchedulerError = "scheduler stopped"
)
