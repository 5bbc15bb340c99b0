package connection

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/connection Service

// Service defines the interface for attendee networking operations
type Service interface {
	// SendRequest opens a pending request; a declined pair is reopened
	SendRequest(ctx context.Context, input *SendRequestInput) (*models.Connection, error)

	Accept(ctx context.Context, input *RespondInput) (*models.Connection, error)

	Decline(ctx context.Context, input *RespondInput) (*models.Connection, error)

	Remove(ctx context.Context, input *RemoveInput) error

	// RemoveBetween deletes the connection between two users, if any
	RemoveBetween(ctx context.Context, input *BetweenInput) error

	// UserConnections returns every connection the user is part of
	UserConnections(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error)

	AcceptedConnections(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error)

	// PendingRequests returns requests awaiting the user's answer
	PendingRequests(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error)

	// SentRequests returns the user's unanswered requests
	SentRequests(ctx context.Context, input *UserInput) (*ListConnectionsOutput, error)

	// Between returns the connection linking two users in either direction, or nil
	Between(ctx context.Context, input *BetweenInput) (*models.Connection, error)

	AreConnected(ctx context.Context, input *BetweenInput) (bool, error)

	ConnectionCount(ctx context.Context, input *UserInput) (int, error)

	PendingCount(ctx context.Context, input *UserInput) (int, error)
}
