package poll

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/poll Service

// Service defines the interface for live poll operations
type Service interface {
	// CreatePoll stores a draft poll with options numbered option-1..n
	CreatePoll(ctx context.Context, input *CreatePollInput) (*models.Poll, error)

	GetPoll(ctx context.Context, input *GetPollInput) (*models.Poll, error)

	// SessionPolls returns a session's polls, newest first
	SessionPolls(ctx context.Context, input *SessionPollsInput) (*ListPollsOutput, error)

	// ActivePolls returns a session's polls that accept votes, newest first
	ActivePolls(ctx context.Context, input *SessionPollsInput) (*ListPollsOutput, error)

	ActivatePoll(ctx context.Context, input *UpdatePollStatusInput) (*models.Poll, error)

	ClosePoll(ctx context.Context, input *UpdatePollStatusInput) (*models.Poll, error)

	// SubmitVote records one vote per user and recomputes the tallies
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// GetUserVote returns the user's vote or nil when they have not voted
	GetUserVote(ctx context.Context, input *UserVoteInput) (*models.PollVote, error)

	HasVoted(ctx context.Context, input *UserVoteInput) (bool, error)

	// RecountVotes rebuilds the option tallies from the full vote set
	RecountVotes(ctx context.Context, input *GetPollInput) (*models.Poll, error)

	// Results reports each option's share of the votes
	Results(ctx context.Context, input *GetPollInput) (*ResultsOutput, error)

	// DeletePoll removes the poll's votes, then the poll
	DeletePoll(ctx context.Context, input *GetPollInput) error
}
