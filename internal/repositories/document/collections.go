package document

// Collection names
const (
	CollectionSessions      = "sessions"
	CollectionBookmarks     = "bookmarks"
	CollectionPolls         = "polls"
	CollectionPollVotes     = "poll_votes"
	CollectionQuestions     = "questions"
	CollectionCheckIns      = "checkins"
	CollectionCheckInLocks  = "checkin_locks"
	CollectionNotifications = "notifications"
	CollectionConnections   = "connections"
)

// Built-in fields addressable in filters and ordering
const (
	FieldID        = "$id"
	FieldCreatedAt = "$createdAt"
	FieldUpdatedAt = "$updatedAt"
)
