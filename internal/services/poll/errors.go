package poll

// PollError is a custom error type for poll-related errors
type PollError string

// Error implements the error interface
func (e PollError) Error() string {
	return string(e)
}

const (
	ErrPollNotFound    PollError = "poll not found"
	ErrInvalidPoll     PollError = "invalid poll"
	ErrAlreadyVoted    PollError = "user has already voted on this poll"
	ErrPollClosed      PollError = "poll is not accepting votes"
	ErrInvalidOption   PollError = "invalid poll option"
	ErrEmptyPollID     PollError = "poll ID cannot be empty"
	ErrEmptyUserID     PollError = "user ID cannot be empty"
	ErrEmptySessionID  PollError = "session ID cannot be empty"
	ErrNilConfig       PollError = "config cannot be nil"
	ErrNilDocumentRepo PollError = "document repository cannot be nil"
)
