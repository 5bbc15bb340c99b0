package bookmark

// BookmarkError represents an error from the bookmark manager
type BookmarkError string

func (e BookmarkError) Error() string {
	return string(e)
}

const (
	// ErrBackendUnavailable wraps failures of the bookmark store
	ErrBackendUnavailable BookmarkError = "bookmark backend unavailable"

	// ErrBookmarkNotFound indicates the session is not bookmarked
	ErrBookmarkNotFound BookmarkError = "bookmark not found"

	ErrEmptyUserID    BookmarkError = "user ID cannot be empty"
	ErrEmptySessionID BookmarkError = "session ID cannot be empty"

	// ErrNilConfig indicates a nil config was provided
	ErrNilConfig BookmarkError = "config cannot be nil"

	ErrNilDocumentRepo   BookmarkError = "document repository cannot be nil"
	ErrNilSessionService BookmarkError = "session service cannot be nil"
)
