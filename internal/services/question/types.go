package question

import (
	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"go.uber.org/zap"
)

const (
	// DefaultTopLimit is used when TopQuestionsInput.Limit is unset
	DefaultTopLimit = 10

	sessionQuestionsLimit  = 200
	approvedQuestionsLimit = 100
	answeredQuestionsLimit = 100
	userQuestionsLimit     = 50
)

// Config holds configuration for the question service
type Config struct {
	DocumentRepo document.Repository
	Clock        clock.Clock
	Logger       *zap.Logger
}

type SubmitQuestionInput struct {
	SessionID string
	UserID    string
	Content   string
}

type GetQuestionInput struct {
	QuestionID string
}

// SessionQuestionsInput selects a session's questions; an empty Status matches all
type SessionQuestionsInput struct {
	SessionID string
	Status    models.QuestionStatus
}

type UserQuestionsInput struct {
	SessionID string
	UserID    string
}

type ListQuestionsOutput struct {
	Questions []*models.Question
}

type UpvoteInput struct {
	QuestionID string
	UserID     string
}

type AnswerInput struct {
	QuestionID string
	Answer     string
	AnsweredBy string
}

type TopQuestionsInput struct {
	SessionID string
	Limit     int
}

type SearchQuestionsInput struct {
	SessionID string
	Query     string
}
