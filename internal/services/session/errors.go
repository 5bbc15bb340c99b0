package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrSessionNotFound  SessionError = "session not found"
	ErrInvalidSession   SessionError = "invalid session"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilDocumentRepo  SessionError = "document repository cannot be nil"
	ErrEmptySessionID   SessionError = "session ID cannot be empty"
	ErrEmptySearchQuery SessionError = "search query cannot be empty"
)
