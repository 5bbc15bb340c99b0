package session

import (
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"go.uber.org/zap"
)

// DefaultUpcomingWindow is how far ahead UpcomingSessions looks
const DefaultUpcomingWindow = 24 * time.Hour

// Config holds configuration for the session service
type Config struct {
	DocumentRepo document.Repository
	Clock        clock.Clock
	Logger       *zap.Logger
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// ListSessionsInput narrows an event's sessions; zero-valued fields do not filter
type ListSessionsInput struct {
	EventID      string
	Type         models.SessionType
	Track        string
	SpeakerID    string
	FeaturedOnly bool
	Limit        int
}

// ListSessionsOutput contains sessions ordered by start time
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// SearchSessionsInput contains parameters for a text search
type SearchSessionsInput struct {
	EventID string
	Query   string
}

// UpcomingSessionsInput contains parameters for the upcoming list
type UpcomingSessionsInput struct {
	EventID string

	// Window defaults to DefaultUpcomingWindow
	Window time.Duration
	Limit  int
}

// CreateSessionInput contains the session to create
type CreateSessionInput struct {
	Session *models.Session
}

// UpdateSessionInput contains the fields to change; nil fields are left alone
type UpdateSessionInput struct {
	SessionID   string
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Room        *string
	Status      *models.SessionStatus
	IsFeatured  *bool
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// AdjustAttendeesInput identifies the session whose count changes
type AdjustAttendeesInput struct {
	SessionID string
}
