package checkin

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/checkin Service

// Service defines the interface for session attendance operations
type Service interface {
	// CheckIn opens a check-in, or returns the user's open one for the session
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)

	// CheckInWithQR parses a scanned payload and checks in with the qr method
	CheckInWithQR(ctx context.Context, input *CheckInWithQRInput) (*CheckInOutput, error)

	CheckOut(ctx context.Context, input *CheckOutInput) (*models.CheckIn, error)

	// CheckOutSession closes the user's open check-in for a session
	CheckOutSession(ctx context.Context, input *SessionUserInput) (*models.CheckIn, error)

	// ActiveCheckIn returns the open check-in or nil
	ActiveCheckIn(ctx context.Context, input *SessionUserInput) (*models.CheckIn, error)

	IsCheckedIn(ctx context.Context, input *SessionUserInput) (bool, error)

	// UserCheckIns returns a user's check-ins, latest first
	UserCheckIns(ctx context.Context, input *UserCheckInsInput) ([]*models.CheckIn, error)

	SessionCheckIns(ctx context.Context, input *SessionCheckInsInput) ([]*models.CheckIn, error)

	CheckInsByMethod(ctx context.Context, input *CheckInsByMethodInput) ([]*models.CheckIn, error)

	// SessionAttendanceCount counts distinct users who checked in
	SessionAttendanceCount(ctx context.Context, input *SessionCheckInsInput) (int, error)

	// AttendanceHistory returns completed check-ins only
	AttendanceHistory(ctx context.Context, input *UserCheckInsInput) ([]*models.CheckIn, error)

	// UserTotalAttendance counts distinct sessions with a completed check-in
	UserTotalAttendance(ctx context.Context, input *UserCheckInsInput) (int, error)

	DeleteCheckIn(ctx context.Context, input *CheckOutInput) error

	// SessionAttendance loads a session and its check-ins together
	SessionAttendance(ctx context.Context, input *SessionCheckInsInput) (*SessionAttendanceOutput, error)
}
