package connection

import (
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"go.uber.org/zap"
)

const (
	connectionsLimit = 1000
	requestsLimit    = 100
)

// Config holds configuration for the connection service
type Config struct {
	DocumentRepo document.Repository

	// Notifications receives request and acceptance notices; nil disables them
	Notifications notification.Service

	Logger *zap.Logger
}

// SendRequestInput describes a networking request. RequesterName is shown
// to the recipient and falls back to the requester ID.
type SendRequestInput struct {
	RequesterID   string
	RecipientID   string
	RequesterName string
	Message       string
}

// RespondInput answers a request. UserID, when set, must be the recipient.
type RespondInput struct {
	ConnectionID string
	UserID       string

	// ResponderName is shown to the requester on acceptance
	ResponderName string
}

type RemoveInput struct {
	ConnectionID string
}

type UserInput struct {
	UserID string
}

// BetweenInput names two users; order does not matter
type BetweenInput struct {
	UserID      string
	OtherUserID string
}

type ListConnectionsOutput struct {
	Connections []*models.Connection
}
