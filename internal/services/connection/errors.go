package connection

// ConnectionError is a custom error type for networking errors
type ConnectionError string

// Error implements the error interface
func (e ConnectionError) Error() string {
	return string(e)
}

const (
	ErrConnectionNotFound ConnectionError = "connection not found"
	ErrAlreadyConnected   ConnectionError = "connection already exists"
	ErrSelfConnection     ConnectionError = "cannot connect with yourself"
	ErrNotRecipient       ConnectionError = "only the recipient can answer a request"
	ErrNotPending         ConnectionError = "connection request is not pending"
	ErrEmptyUserID        ConnectionError = "user ID cannot be empty"
	ErrEmptyConnectionID  ConnectionError = "connection ID cannot be empty"
	ErrNilConfig          ConnectionError = "config cannot be nil"
	ErrNilDocumentRepo    ConnectionError = "document repository cannot be nil"
)
