package poll

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/aggregate"
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	documentRepo document.Repository
	clock        clock.Clock
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// New creates a new poll service
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
		metrics:      cfg.Metrics,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	return s, nil
}

// voteID keys a vote by poll and user so the store rejects a second vote
func voteID(pollID, userID string) string {
	return pollID + "_" + userID
}

func (s *service) CreatePoll(ctx context.Context, input *CreatePollInput) (*models.Poll, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidPoll)
	}
	if len(input.Options) < MinOptions {
		return nil, fmt.Errorf("%w: at least %d options are required", ErrInvalidPoll, MinOptions)
	}

	options := make([]models.PollOption, len(input.Options))
	for i, text := range input.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("%w: option %d is empty", ErrInvalidPoll, i+1)
		}
		options[i] = models.PollOption{
			ID:   fmt.Sprintf("option-%d", i+1),
			Text: text,
		}
	}

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionPolls,
		Fields: &models.Poll{
			SessionID:     input.SessionID,
			Question:      question,
			Options:       options,
			Status:        models.PollStatusDraft,
			AllowMultiple: input.AllowMultiple,
			ShowResults:   !input.HideResults,
			CreatedBy:     input.CreatedBy,
			EndTime:       input.EndTime,
		},
	})
	if err != nil {
		s.logger.Error("failed to create poll", zap.String("session_id", input.SessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	return document.Decode[models.Poll](doc)
}

func (s *service) GetPoll(ctx context.Context, input *GetPollInput) (*models.Poll, error) {
	if input == nil || input.PollID == "" {
		return nil, ErrEmptyPollID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionPolls,
		ID:         input.PollID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	return document.Decode[models.Poll](doc)
}

func (s *service) SessionPolls(ctx context.Context, input *SessionPollsInput) (*ListPollsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	return s.listPolls(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
	}, sessionPollsLimit)
}

func (s *service) ActivePolls(ctx context.Context, input *SessionPollsInput) (*ListPollsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	return s.listPolls(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("status", models.PollStatusActive),
	}, activePollsLimit)
}

func (s *service) ActivatePoll(ctx context.Context, input *UpdatePollStatusInput) (*models.Poll, error) {
	return s.setStatus(ctx, input, models.PollStatusActive)
}

func (s *service) ClosePoll(ctx context.Context, input *UpdatePollStatusInput) (*models.Poll, error) {
	return s.setStatus(ctx, input, models.PollStatusClosed)
}

func (s *service) setStatus(ctx context.Context, input *UpdatePollStatusInput, status models.PollStatus) (*models.Poll, error) {
	if input == nil || input.PollID == "" {
		return nil, ErrEmptyPollID
	}

	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionPolls,
		ID:         input.PollID,
		Fields:     map[string]any{"status": status},
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to set poll status: %w", err)
	}

	s.logger.Info("poll status changed",
		zap.String("poll_id", input.PollID),
		zap.String("status", string(status)))

	return document.Decode[models.Poll](doc)
}

func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil || input.PollID == "" {
		return nil, ErrEmptyPollID
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	poll, err := s.GetPoll(ctx, &GetPollInput{PollID: input.PollID})
	if err != nil {
		return nil, err
	}

	if poll.Status != models.PollStatusActive {
		return nil, ErrPollClosed
	}
	if poll.EndTime != nil && !s.clock.Now().Before(*poll.EndTime) {
		return nil, ErrPollClosed
	}

	optionIDs, err := validateSelection(poll, input.OptionIDs)
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionPollVotes,
		ID:         voteID(input.PollID, input.UserID),
		Fields: &models.PollVote{
			PollID:    input.PollID,
			UserID:    input.UserID,
			OptionIDs: optionIDs,
		},
	})
	if err != nil {
		if errors.Is(err, document.ErrAlreadyExists) {
			return nil, ErrAlreadyVoted
		}
		s.logger.Error("failed to store vote",
			zap.String("poll_id", input.PollID),
			zap.String("user_id", input.UserID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to submit vote: %w", err)
	}
	s.metrics.VoteSubmitted()

	vote, err := document.Decode[models.PollVote](doc)
	if err != nil {
		return nil, err
	}

	tallied, err := s.RecountVotes(ctx, &GetPollInput{PollID: input.PollID})
	if err != nil {
		return nil, err
	}

	return &SubmitVoteOutput{
		Vote: vote,
		Poll: tallied,
	}, nil
}

// validateSelection returns the selection without duplicates
func validateSelection(poll *models.Poll, optionIDs []string) ([]string, error) {
	known := make(map[string]bool, len(poll.Options))
	for _, option := range poll.Options {
		known[option.ID] = true
	}

	seen := make(map[string]bool, len(optionIDs))
	selected := make([]string, 0, len(optionIDs))
	for _, id := range optionIDs {
		if !known[id] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOption, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		selected = append(selected, id)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no option selected", ErrInvalidOption)
	}
	if len(selected) > 1 && !poll.AllowMultiple {
		return nil, fmt.Errorf("%w: poll allows a single choice", ErrInvalidOption)
	}

	return selected, nil
}

func (s *service) GetUserVote(ctx context.Context, input *UserVoteInput) (*models.PollVote, error) {
	if input == nil || input.PollID == "" {
		return nil, ErrEmptyPollID
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionPollVotes,
		ID:         voteID(input.PollID, input.UserID),
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return document.Decode[models.PollVote](doc)
}

func (s *service) HasVoted(ctx context.Context, input *UserVoteInput) (bool, error) {
	vote, err := s.GetUserVote(ctx, input)
	if err != nil {
		return false, err
	}
	return vote != nil, nil
}

func (s *service) RecountVotes(ctx context.Context, input *GetPollInput) (*models.Poll, error) {
	poll, err := s.GetPoll(ctx, input)
	if err != nil {
		return nil, err
	}

	votes, err := s.votes(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	options, total := aggregate.Tally(poll.Options, votes)

	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionPolls,
		ID:         poll.ID,
		Fields: map[string]any{
			"options":    options,
			"totalVotes": total,
		},
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to update vote counts: %w", err)
	}

	return document.Decode[models.Poll](doc)
}

func (s *service) Results(ctx context.Context, input *GetPollInput) (*ResultsOutput, error) {
	poll, err := s.GetPoll(ctx, input)
	if err != nil {
		return nil, err
	}

	results := make([]OptionResult, len(poll.Options))
	for i, option := range poll.Options {
		results[i] = OptionResult{
			Option:     option,
			Percentage: aggregate.Percentage(option.Votes, poll.TotalVotes),
		}
	}

	return &ResultsOutput{
		Poll:       poll,
		TotalVotes: poll.TotalVotes,
		Results:    results,
	}, nil
}

func (s *service) DeletePoll(ctx context.Context, input *GetPollInput) error {
	if input == nil || input.PollID == "" {
		return ErrEmptyPollID
	}

	votes, err := s.votes(ctx, input.PollID)
	if err != nil {
		return err
	}

	for _, vote := range votes {
		err := s.documentRepo.Delete(ctx, &document.DeleteInput{
			Collection: document.CollectionPollVotes,
			ID:         vote.ID,
		})
		if err != nil && !errors.Is(err, document.ErrNotFound) {
			return fmt.Errorf("failed to delete vote: %w", err)
		}
	}

	err = s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionPolls,
		ID:         input.PollID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrPollNotFound
		}
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	return nil
}

func (s *service) votes(ctx context.Context, pollID string) ([]*models.PollVote, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionPollVotes,
		Filters:    []document.Filter{document.Equal("pollId", pollID)},
	})
	if err != nil {
		s.logger.Error("failed to list votes", zap.String("poll_id", pollID), zap.Error(err))
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	return document.DecodeAll[models.PollVote](out.Documents)
}

func (s *service) listPolls(ctx context.Context, filters []document.Filter, limit int) (*ListPollsOutput, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionPolls,
		Filters:    filters,
		Orders:     []document.Order{document.Desc(document.FieldCreatedAt)},
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list polls", zap.Error(err))
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}

	polls, err := document.DecodeAll[models.Poll](out.Documents)
	if err != nil {
		return nil, err
	}

	return &ListPollsOutput{
		Polls: polls,
	}, nil
}
