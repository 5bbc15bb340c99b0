package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/aggregate"
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/qrcode"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	documentRepo document.Repository
	sessions     session.Service
	clock        clock.Clock
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// New creates a new check-in service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}

	s := &service{
		documentRepo: cfg.DocumentRepo,
		sessions:     cfg.Sessions,
		clock:        cfg.Clock,
		logger:       logging.OrNop(cfg.Logger),
		metrics:      cfg.Metrics,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	return s, nil
}

var byCheckInTime = []document.Order{document.Desc("checkInTime")}

// openClaimTTL is how long a claim without an open check-in blocks new ones
const openClaimTTL = 30 * time.Second

// openClaim marks a user as holding the single open check-in slot for a session
type openClaim struct {
	UserID    string    `json:"userId"`
	SessionID string    `json:"sessionId"`
	ClaimedAt time.Time `json:"claimedAt"`
}

func openClaimID(userID, sessionID string) string {
	return userID + "_" + sessionID
}

func validMethod(m models.CheckInMethod) bool {
	switch m {
	case models.CheckInMethodQR, models.CheckInMethodNFC, models.CheckInMethodGeofence, models.CheckInMethodManual:
		return true
	}
	return false
}

func (s *service) CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	method := input.Method
	if method == "" {
		method = models.CheckInMethodQR
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	existing, err := s.ActiveCheckIn(ctx, &SessionUserInput{UserID: input.UserID, SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Debug("already checked in",
			zap.String("user_id", input.UserID),
			zap.String("session_id", input.SessionID))
		return &CheckInOutput{CheckIn: existing, Existing: true}, nil
	}

	claimed, err := s.claimOpen(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		existing, err = s.ActiveCheckIn(ctx, &SessionUserInput{UserID: input.UserID, SessionID: input.SessionID})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrCheckInInProgress
		}
		return &CheckInOutput{CheckIn: existing, Existing: true}, nil
	}

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionCheckIns,
		Fields: &models.CheckIn{
			UserID:      input.UserID,
			SessionID:   input.SessionID,
			CheckInTime: s.clock.Now(),
			Method:      method,
			Location:    input.Location,
		},
	})
	if err != nil {
		s.logger.Error("failed to check in",
			zap.String("user_id", input.UserID),
			zap.String("session_id", input.SessionID),
			zap.Error(err))
		s.releaseOpen(ctx, input.UserID, input.SessionID)
		return nil, fmt.Errorf("failed to check in: %w", err)
	}
	s.metrics.CheckedIn(string(method))
	s.adjustAttendees(ctx, input.SessionID, true)

	c, err := document.Decode[models.CheckIn](doc)
	if err != nil {
		return nil, err
	}

	return &CheckInOutput{CheckIn: c}, nil
}

func (s *service) CheckInWithQR(ctx context.Context, input *CheckInWithQRInput) (*CheckInOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	payload, err := qrcode.Parse(input.Payload)
	if err != nil {
		return nil, err
	}

	return s.CheckIn(ctx, &CheckInInput{
		UserID:    input.UserID,
		SessionID: payload.SessionID,
		Method:    models.CheckInMethodQR,
	})
}

func (s *service) CheckOut(ctx context.Context, input *CheckOutInput) (*models.CheckIn, error) {
	if input == nil || input.CheckInID == "" {
		return nil, ErrEmptyCheckInID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionCheckIns,
		ID:         input.CheckInID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrCheckInNotFound
		}
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}

	current, err := document.Decode[models.CheckIn](doc)
	if err != nil {
		return nil, err
	}
	if !current.IsOpen() {
		return nil, ErrAlreadyCheckedOut
	}

	doc, err = s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionCheckIns,
		ID:         input.CheckInID,
		Fields:     map[string]any{"checkOutTime": s.clock.Now()},
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrCheckInNotFound
		}
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	s.releaseOpen(ctx, current.UserID, current.SessionID)
	s.adjustAttendees(ctx, current.SessionID, false)

	return document.Decode[models.CheckIn](doc)
}

func (s *service) CheckOutSession(ctx context.Context, input *SessionUserInput) (*models.CheckIn, error) {
	active, err := s.ActiveCheckIn(ctx, input)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNotCheckedIn
	}

	return s.CheckOut(ctx, &CheckOutInput{CheckInID: active.ID})
}

func (s *service) ActiveCheckIn(ctx context.Context, input *SessionUserInput) (*models.CheckIn, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	found, err := s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
		document.Equal("sessionId", input.SessionID),
		document.IsNull("checkOutTime"),
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (s *service) IsCheckedIn(ctx context.Context, input *SessionUserInput) (bool, error) {
	active, err := s.ActiveCheckIn(ctx, input)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

func (s *service) UserCheckIns(ctx context.Context, input *UserCheckInsInput) ([]*models.CheckIn, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
	}, limitOr(input.Limit, DefaultUserLimit))
}

func (s *service) SessionCheckIns(ctx context.Context, input *SessionCheckInsInput) ([]*models.CheckIn, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
	}, sessionCheckInsLimit)
}

func (s *service) CheckInsByMethod(ctx context.Context, input *CheckInsByMethodInput) ([]*models.CheckIn, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}
	if !validMethod(input.Method) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, input.Method)
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("method", input.Method),
	}, sessionCheckInsLimit)
}

func (s *service) SessionAttendanceCount(ctx context.Context, input *SessionCheckInsInput) (int, error) {
	checkIns, err := s.SessionCheckIns(ctx, input)
	if err != nil {
		return 0, err
	}
	return aggregate.DistinctUsers(checkIns), nil
}

func (s *service) AttendanceHistory(ctx context.Context, input *UserCheckInsInput) ([]*models.CheckIn, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
		document.IsNotNull("checkOutTime"),
	}, limitOr(input.Limit, DefaultUserLimit))
}

func (s *service) UserTotalAttendance(ctx context.Context, input *UserCheckInsInput) (int, error) {
	if input == nil || input.UserID == "" {
		return 0, ErrEmptyUserID
	}

	checkIns, err := s.list(ctx, []document.Filter{
		document.Equal("userId", input.UserID),
	}, totalAttendanceLimit)
	if err != nil {
		return 0, err
	}
	return aggregate.DistinctCompletedSessions(checkIns), nil
}

func (s *service) DeleteCheckIn(ctx context.Context, input *CheckOutInput) error {
	if input == nil || input.CheckInID == "" {
		return ErrEmptyCheckInID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionCheckIns,
		ID:         input.CheckInID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrCheckInNotFound
		}
		return fmt.Errorf("failed to get check-in: %w", err)
	}
	current, err := document.Decode[models.CheckIn](doc)
	if err != nil {
		return err
	}

	err = s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionCheckIns,
		ID:         input.CheckInID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrCheckInNotFound
		}
		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	if current.IsOpen() {
		s.releaseOpen(ctx, current.UserID, current.SessionID)
		s.adjustAttendees(ctx, current.SessionID, false)
	}

	return nil
}

// claimOpen reserves the open check-in slot for a user and session.
// It reports false when another caller holds the slot.
func (s *service) claimOpen(ctx context.Context, userID, sessionID string) (bool, error) {
	id := openClaimID(userID, sessionID)

	for attempt := 0; attempt < 2; attempt++ {
		_, err := s.documentRepo.Create(ctx, &document.CreateInput{
			Collection: document.CollectionCheckInLocks,
			ID:         id,
			Fields: &openClaim{
				UserID:    userID,
				SessionID: sessionID,
				ClaimedAt: s.clock.Now(),
			},
		})
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, document.ErrAlreadyExists) {
			return false, fmt.Errorf("failed to claim check-in: %w", err)
		}

		stale, err := s.staleClaim(ctx, userID, sessionID)
		if err != nil || !stale {
			return false, err
		}

		s.logger.Warn("dropping stale check-in claim",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID))
		s.releaseOpen(ctx, userID, sessionID)
	}

	return false, nil
}

// staleClaim reports whether the held claim is old and backs no open check-in
func (s *service) staleClaim(ctx context.Context, userID, sessionID string) (bool, error) {
	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionCheckInLocks,
		ID:         openClaimID(userID, sessionID),
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to get check-in claim: %w", err)
	}

	var claim openClaim
	if err := json.Unmarshal(doc.Data, &claim); err != nil {
		return false, fmt.Errorf("failed to decode check-in claim: %w", err)
	}
	if s.clock.Now().Sub(claim.ClaimedAt) < openClaimTTL {
		return false, nil
	}

	active, err := s.ActiveCheckIn(ctx, &SessionUserInput{UserID: userID, SessionID: sessionID})
	if err != nil {
		return false, err
	}
	return active == nil, nil
}

func (s *service) releaseOpen(ctx context.Context, userID, sessionID string) {
	err := s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionCheckInLocks,
		ID:         openClaimID(userID, sessionID),
	})
	if err != nil && !errors.Is(err, document.ErrNotFound) {
		s.logger.Warn("failed to release check-in claim",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

// adjustAttendees keeps the session's live count in step with open check-ins.
// Sessions outside the schedule are skipped.
func (s *service) adjustAttendees(ctx context.Context, sessionID string, arrived bool) {
	input := &session.AdjustAttendeesInput{SessionID: sessionID}

	var err error
	if arrived {
		_, err = s.sessions.IncrementAttendees(ctx, input)
	} else {
		_, err = s.sessions.DecrementAttendees(ctx, input)
	}
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		s.logger.Warn("failed to adjust attendee count",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

func (s *service) SessionAttendance(ctx context.Context, input *SessionCheckInsInput) (*SessionAttendanceOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	out := &SessionAttendanceOutput{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sess, err := s.sessions.GetSession(gctx, &session.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			return err
		}
		out.Session = sess
		return nil
	})
	g.Go(func() error {
		checkIns, err := s.SessionCheckIns(gctx, input)
		if err != nil {
			return err
		}
		out.CheckIns = checkIns
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.AttendeeCount = aggregate.DistinctUsers(out.CheckIns)
	return out, nil
}

func limitOr(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

func (s *service) list(ctx context.Context, filters []document.Filter, limit int) ([]*models.CheckIn, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionCheckIns,
		Filters:    filters,
		Orders:     byCheckInTime,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list check-ins", zap.Error(err))
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	return document.DecodeAll[models.CheckIn](out.Documents)
}
