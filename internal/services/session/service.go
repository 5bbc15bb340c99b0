package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	documentRepo document.Repository
	clock        clock.Clock
	logger       *zap.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}

	s := &service{
		documentRepo: cfg.DocumentRepo,
		clock:        cfg.Clock,
		logger:       logging.OrNop(cfg.Logger),
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	return s, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionSessions,
		ID:         input.SessionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("failed to get session", zap.String("session_id", input.SessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return document.Decode[models.Session](doc)
}

// ListSessions returns an event's sessions ordered by start time
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &ListSessionsInput{}
	}

	var filters []document.Filter
	if input.EventID != "" {
		filters = append(filters, document.Equal("eventId", input.EventID))
	}
	if input.Type != "" {
		filters = append(filters, document.Equal("type", input.Type))
	}
	if input.Track != "" {
		filters = append(filters, document.Equal("track", input.Track))
	}
	if input.SpeakerID != "" {
		filters = append(filters, document.Contains("speakerIds", input.SpeakerID))
	}
	if input.FeaturedOnly {
		filters = append(filters, document.Equal("isFeatured", true))
	}

	sessions, err := s.list(ctx, filters, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SearchSessions matches title, description and tags case-insensitively
func (s *service) SearchSessions(ctx context.Context, input *SearchSessionsInput) (*ListSessionsOutput, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, ErrEmptySearchQuery
	}

	out, err := s.ListSessions(ctx, &ListSessionsInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	matched := make([]*models.Session, 0, len(out.Sessions))
	for _, session := range out.Sessions {
		if matchesQuery(session, query) {
			matched = append(matched, session)
		}
	}

	return &ListSessionsOutput{
		Sessions: matched,
	}, nil
}

func matchesQuery(session *models.Session, query string) bool {
	if strings.Contains(strings.ToLower(session.Title), query) ||
		strings.Contains(strings.ToLower(session.Description), query) {
		return true
	}
	for _, tag := range session.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// UpcomingSessions returns sessions starting after now and within the window
func (s *service) UpcomingSessions(ctx context.Context, input *UpcomingSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &UpcomingSessionsInput{}
	}

	window := input.Window
	if window <= 0 {
		window = DefaultUpcomingWindow
	}

	now := s.clock.Now()
	filters := []document.Filter{
		document.GreaterThan("startTime", now),
		document.LessThan("startTime", now.Add(window)),
	}
	if input.EventID != "" {
		filters = append(filters, document.Equal("eventId", input.EventID))
	}

	sessions, err := s.list(ctx, filters, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// CreateSession stores a session, defaulting its status to scheduled
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, fmt.Errorf("%w: session cannot be nil", ErrInvalidSession)
	}

	session := *input.Session
	if strings.TrimSpace(session.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidSession)
	}
	if !session.EndTime.IsZero() && session.EndTime.Before(session.StartTime) {
		return nil, fmt.Errorf("%w: end time before start time", ErrInvalidSession)
	}
	if session.Status == "" {
		session.Status = models.SessionStatusScheduled
	}
	session.CurrentAttendees = 0

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionSessions,
		ID:         session.ID,
		Fields:     &session,
	})
	if err != nil {
		s.logger.Error("failed to create session", zap.String("title", session.Title), zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return document.Decode[models.Session](doc)
}

// UpdateSession applies the non-nil fields of input
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	fields := map[string]any{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidSession)
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.StartTime != nil {
		fields["startTime"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["endTime"] = *input.EndTime
	}
	if input.Room != nil {
		fields["room"] = *input.Room
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.IsFeatured != nil {
		fields["isFeatured"] = *input.IsFeatured
	}

	if len(fields) == 0 {
		return s.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	}

	return s.update(ctx, input.SessionID, fields)
}

// DeleteSession removes a session
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrEmptySessionID
	}

	err := s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionSessions,
		ID:         input.SessionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("failed to delete session", zap.String("session_id", input.SessionID), zap.Error(err))
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// IncrementAttendees bumps the live attendee count
func (s *service) IncrementAttendees(ctx context.Context, input *AdjustAttendeesInput) (*models.Session, error) {
	return s.adjustAttendees(ctx, input, 1)
}

// DecrementAttendees lowers the live attendee count, never below zero
func (s *service) DecrementAttendees(ctx context.Context, input *AdjustAttendeesInput) (*models.Session, error) {
	return s.adjustAttendees(ctx, input, -1)
}

func (s *service) adjustAttendees(ctx context.Context, input *AdjustAttendeesInput, delta int) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	session, err := s.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	count := max(session.CurrentAttendees+delta, 0)

	return s.update(ctx, input.SessionID, map[string]any{
		"currentAttendees": count,
	})
}

func (s *service) update(ctx context.Context, sessionID string, fields map[string]any) (*models.Session, error) {
	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionSessions,
		ID:         sessionID,
		Fields:     fields,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("failed to update session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return document.Decode[models.Session](doc)
}

func (s *service) list(ctx context.Context, filters []document.Filter, limit int) ([]*models.Session, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionSessions,
		Filters:    filters,
		Orders:     []document.Order{document.Asc("startTime")},
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list sessions", zap.Error(err))
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return document.DecodeAll[models.Session](out.Documents)
}
