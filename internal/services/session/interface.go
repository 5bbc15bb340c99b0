package session

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/session Service

// Service defines the interface for agenda session operations
type Service interface {
	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions returns an event's sessions ordered by start time
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SearchSessions matches title, description and tags case-insensitively
	SearchSessions(ctx context.Context, input *SearchSessionsInput) (*ListSessionsOutput, error)

	// UpcomingSessions returns sessions starting within the window from now
	UpcomingSessions(ctx context.Context, input *UpcomingSessionsInput) (*ListSessionsOutput, error)

	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// IncrementAttendees bumps the live attendee count
	IncrementAttendees(ctx context.Context, input *AdjustAttendeesInput) (*models.Session, error)

	// DecrementAttendees lowers the live attendee count, never below zero
	DecrementAttendees(ctx context.Context, input *AdjustAttendeesInput) (*models.Session, error)
}
