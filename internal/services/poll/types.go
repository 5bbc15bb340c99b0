package poll

import (
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"go.uber.org/zap"
)

const (
	// MinOptions is the fewest options a poll may offer
	MinOptions = 2

	sessionPollsLimit = 100
	activePollsLimit  = 50
)

// Config holds configuration for the poll service
type Config struct {
	DocumentRepo document.Repository
	Clock        clock.Clock
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
}

// CreatePollInput describes a new poll
type CreatePollInput struct {
	SessionID     string
	CreatedBy     string
	Question      string
	Options       []string
	AllowMultiple bool

	// HideResults keeps tallies from voters
	HideResults bool

	EndTime *time.Time
}

type GetPollInput struct {
	PollID string
}

type SessionPollsInput struct {
	SessionID string
}

type ListPollsOutput struct {
	Polls []*models.Poll
}

type UpdatePollStatusInput struct {
	PollID string
}

// SubmitVoteInput carries a user's selection
type SubmitVoteInput struct {
	PollID    string
	UserID    string
	OptionIDs []string
}

// SubmitVoteOutput holds the stored vote and the re-tallied poll
type SubmitVoteOutput struct {
	Vote *models.PollVote
	Poll *models.Poll
}

type UserVoteInput struct {
	PollID string
	UserID string
}

// OptionResult is one option's tally and share
type OptionResult struct {
	Option     models.PollOption
	Percentage int
}

// ResultsOutput summarizes a poll's tallies
type ResultsOutput struct {
	Poll       *models.Poll
	TotalVotes int
	Results    []OptionResult
}
