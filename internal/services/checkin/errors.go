package checkin

// CheckInError is a custom error type for attendance errors
type CheckInError string

// Error implements the error interface
func (e CheckInError) Error() string {
	return string(e)
}

const (
	ErrCheckInNotFound   CheckInError = "check-in not found"
	ErrAlreadyCheckedOut CheckInError = "already checked out"
	ErrNotCheckedIn      CheckInError = "not checked in to this session"
	ErrCheckInInProgress CheckInError = "check-in already in progress"
	ErrInvalidMethod     CheckInError = "invalid check-in method"
	ErrEmptyUserID       CheckInError = "user ID cannot be empty"
	ErrEmptySessionID    CheckInError = "session ID cannot be empty"
	ErrEmptyCheckInID    CheckInError = "check-in ID cannot be empty"
	ErrNilConfig         CheckInError = "config cannot be nil"
	ErrNilDocumentRepo   CheckInError = "document repository cannot be nil"
	ErrNilSessionService CheckInError = "session service cannot be nil"
)
