package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/aggregate"
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

// New creates a new question service
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

var (
	byUpvotes = []document.Order{document.Desc("upvotes"), document.Asc(document.FieldCreatedAt)}
	byNewest  = []document.Order{document.Desc(document.FieldCreatedAt)}
)

func (s *service) SubmitQuestion(ctx context.Context, input *SubmitQuestionInput) (*models.Question, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrEmptyQuestion
	}

	doc, err := s.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionQuestions,
		Fields: &models.Question{
			SessionID: input.SessionID,
			UserID:    input.UserID,
			Content:   content,
			UpvotedBy: []string{},
			Status:    models.QuestionStatusPending,
		},
	})
	if err != nil {
		s.logger.Error("failed to submit question", zap.String("session_id", input.SessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to submit question: %w", err)
	}

	return document.Decode[models.Question](doc)
}

func (s *service) GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, ErrEmptyQuestionID
	}

	doc, err := s.documentRepo.Get(ctx, &document.GetInput{
		Collection: document.CollectionQuestions,
		ID:         input.QuestionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return document.Decode[models.Question](doc)
}

func (s *service) SessionQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	filters := []document.Filter{document.Equal("sessionId", input.SessionID)}
	if input.Status != "" {
		filters = append(filters, document.Equal("status", input.Status))
	}

	return s.list(ctx, filters, byUpvotes, sessionQuestionsLimit)
}

func (s *service) ApprovedQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("status", models.QuestionStatusApproved),
	}, byUpvotes, approvedQuestionsLimit)
}

func (s *service) AnsweredQuestions(ctx context.Context, input *SessionQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("status", models.QuestionStatusAnswered),
	}, byNewest, answeredQuestionsLimit)
}

func (s *service) UserQuestions(ctx context.Context, input *UserQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("userId", input.UserID),
	}, byNewest, userQuestionsLimit)
}

func (s *service) Upvote(ctx context.Context, input *UpvoteInput) (*models.Question, error) {
	return s.mutateUpvote(ctx, input, func(q *models.Question, userID string) error {
		if !aggregate.SetUpvote(q, userID, true) {
			return ErrAlreadyUpvoted
		}
		return nil
	})
}

func (s *service) RemoveUpvote(ctx context.Context, input *UpvoteInput) (*models.Question, error) {
	return s.mutateUpvote(ctx, input, func(q *models.Question, userID string) error {
		if !aggregate.SetUpvote(q, userID, false) {
			return ErrNotUpvoted
		}
		return nil
	})
}

func (s *service) ToggleUpvote(ctx context.Context, input *UpvoteInput) (*models.Question, error) {
	return s.mutateUpvote(ctx, input, func(q *models.Question, userID string) error {
		aggregate.ToggleUpvote(q, userID)
		return nil
	})
}

// mutateUpvote writes the upvoter set and its derived count together
func (s *service) mutateUpvote(ctx context.Context, input *UpvoteInput, apply func(*models.Question, string) error) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, ErrEmptyQuestionID
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	q, err := s.GetQuestion(ctx, &GetQuestionInput{QuestionID: input.QuestionID})
	if err != nil {
		return nil, err
	}

	if err := apply(q, input.UserID); err != nil {
		return nil, err
	}

	return s.update(ctx, input.QuestionID, map[string]any{
		"upvotes":   q.Upvotes,
		"upvotedBy": q.UpvotedBy,
	})
}

func (s *service) Answer(ctx context.Context, input *AnswerInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, ErrEmptyQuestionID
	}

	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	return s.update(ctx, input.QuestionID, map[string]any{
		"answer":     answer,
		"answeredBy": input.AnsweredBy,
		"answeredAt": s.clock.Now(),
		"isAnswered": true,
		"status":     models.QuestionStatusAnswered,
	})
}

func (s *service) Approve(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, ErrEmptyQuestionID
	}
	return s.update(ctx, input.QuestionID, map[string]any{"status": models.QuestionStatusApproved})
}

func (s *service) Hide(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, ErrEmptyQuestionID
	}
	return s.update(ctx, input.QuestionID, map[string]any{"status": models.QuestionStatusHidden})
}

func (s *service) Delete(ctx context.Context, input *GetQuestionInput) error {
	if input == nil || input.QuestionID == "" {
		return ErrEmptyQuestionID
	}

	err := s.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionQuestions,
		ID:         input.QuestionID,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	return nil
}

func (s *service) TopQuestions(ctx context.Context, input *TopQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	return s.list(ctx, []document.Filter{
		document.Equal("sessionId", input.SessionID),
		document.Equal("status", models.QuestionStatusApproved),
	}, byUpvotes, limit)
}

func (s *service) UnansweredCount(ctx context.Context, input *SessionQuestionsInput) (int, error) {
	out, err := s.ApprovedQuestions(ctx, input)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, q := range out.Questions {
		if !q.IsAnswered {
			count++
		}
	}
	return count, nil
}

func (s *service) Search(ctx context.Context, input *SearchQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, ErrEmptySearchQuery
	}

	out, err := s.SessionQuestions(ctx, &SessionQuestionsInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	matched := make([]*models.Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		if strings.Contains(strings.ToLower(q.Content), query) {
			matched = append(matched, q)
		}
	}

	return &ListQuestionsOutput{
		Questions: matched,
	}, nil
}

func (s *service) update(ctx context.Context, questionID string, fields map[string]any) (*models.Question, error) {
	doc, err := s.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionQuestions,
		ID:         questionID,
		Fields:     fields,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		s.logger.Error("failed to update question", zap.String("question_id", questionID), zap.Error(err))
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	return document.Decode[models.Question](doc)
}

func (s *service) list(ctx context.Context, filters []document.Filter, orders []document.Order, limit int) (*ListQuestionsOutput, error) {
	out, err := s.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionQuestions,
		Filters:    filters,
		Orders:     orders,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error("failed to list questions", zap.Error(err))
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions, err := document.DecodeAll[models.Question](out.Documents)
	if err != nil {
		return nil, err
	}

	return &ListQuestionsOutput{
		Questions: questions,
	}, nil
}
