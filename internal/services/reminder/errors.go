package reminder

// ReminderError is a custom error type for reminder-related errors
type ReminderError string

// Error implements the error interface
func (e ReminderError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    ReminderError = "config cannot be nil"
	ErrNilScheduler ReminderError = "scheduler cannot be nil"
	ErrEmptySession ReminderError = "session ID cannot be empty"
	ErrEmptyUser    ReminderError = "user ID cannot be empty"
	ErrNoStartTime  ReminderError = "session start time cannot be zero"
)
