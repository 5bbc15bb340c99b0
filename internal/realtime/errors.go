package realtime

// FeedError is a realtime layer condition
type FeedError string

func (e FeedError) Error() string {
	return string(e)
}

const (
	// ErrSubscribeFailed is captured on a Watcher when the change-feed could not be opened
	ErrSubscribeFailed FeedError = "change-feed subscription failed"

	// ErrInvalidChannel is returned for channel names outside the documents namespace
	ErrInvalidChannel FeedError = "invalid channel"
)
