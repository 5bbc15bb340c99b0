package question

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/agendabot/internal/services/question Service

// Service defines the interface for session Q&A operations
type Service interface {
	// SubmitQuestion stores a pending question
	SubmitQuestion(ctx context.Context, input *SubmitQuestionInput) (*models.Question, error)

	GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	// SessionQuestions returns a session's questions, most upvoted first
	SessionQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error)

	ApprovedQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error)

	// AnsweredQuestions returns answered questions, newest first
	AnsweredQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error)

	UserQuestions(ctx context.Context, input *UserQuestionsInput) (*ListQuestionsOutput, error)

	// Upvote adds the user's upvote; ErrAlreadyUpvoted when present
	Upvote(ctx context.Context, input *UpvoteInput) (*models.Question, error)

	// RemoveUpvote removes the user's upvote; ErrNotUpvoted when absent
	RemoveUpvote(ctx context.Context, input *UpvoteInput) (*models.Question, error)

	ToggleUpvote(ctx context.Context, input *UpvoteInput) (*models.Question, error)

	Answer(ctx context.Context, input *AnswerInput) (*models.Question, error)

	Approve(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	Hide(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	Delete(ctx context.Context, input *GetQuestionInput) error

	// TopQuestions returns the most upvoted approved questions
	TopQuestions(ctx context.Context, input *TopQuestionsInput) (*ListQuestionsOutput, error)

	// UnansweredCount counts approved questions still awaiting an answer
	UnansweredCount(ctx context.Context, input *SessionQuestionsInput) (int, error)

	// Search matches question content case-insensitively
	Search(ctx context.Context, input *SearchQuestionsInput) (*ListQuestionsOutput, error)
}
