package checkin

import (
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"go.uber.org/zap"
)

const (
	// DefaultUserLimit bounds user listings when no limit is given
	DefaultUserLimit = 50

	sessionCheckInsLimit = 1000
	totalAttendanceLimit = 1000
)

// Config holds configuration for the check-in service
type Config struct {
	DocumentRepo document.Repository
	Sessions     session.Service
	Clock        clock.Clock
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
}

// CheckInInput describes an arrival; Method defaults to qr
type CheckInInput struct {
	UserID    string
	SessionID string
	Method    models.CheckInMethod
	Location  *models.Location
}

type CheckInWithQRInput struct {
	UserID string

	// Payload is the scanned QR text
	Payload string
}

// CheckInOutput holds the check-in and whether it was already open
type CheckInOutput struct {
	CheckIn  *models.CheckIn
	Existing bool
}

type CheckOutInput struct {
	CheckInID string
}

type SessionUserInput struct {
	UserID    string
	SessionID string
}

type UserCheckInsInput struct {
	UserID string
	Limit  int
}

type SessionCheckInsInput struct {
	SessionID string
}

type CheckInsByMethodInput struct {
	SessionID string
	Method    models.CheckInMethod
}

// SessionAttendanceOutput combines a session with its check-ins
type SessionAttendanceOutput struct {
	Session       *models.Session
	CheckIns      []*models.CheckIn
	AttendeeCount int
}
