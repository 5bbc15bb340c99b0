package notification

// NotificationError is a custom error type for notification-related errors
type NotificationError string

// Error implements the error interface
func (e NotificationError) Error() string {
	return string(e)
}

const (
	ErrNotificationNotFound NotificationError = "notification not found"
	ErrInvalidChangeType    NotificationError = "invalid schedule change type"
	ErrEmptyUserID          NotificationError = "user ID cannot be empty"
	ErrEmptyNotificationID  NotificationError = "notification ID cannot be empty"
	ErrNilConfig            NotificationError = "config cannot be nil"
	ErrNilDocumentRepo      NotificationError = "document repository cannot be nil"
	ErrNilKVRepo            NotificationError = "key-value repository cannot be nil"
)
