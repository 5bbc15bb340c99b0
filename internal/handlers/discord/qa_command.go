package discord

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/question"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// QACommand handles the /qa command
type QACommand struct {
	BaseCommand
	questions question.Service
	sessions  session.Service
	live      *LiveBoard
}

// NewQACommand creates a new Q&A command handler; live may be nil
func NewQACommand(questions question.Service, sessions session.Service, live *LiveBoard) *QACommand {
	return &QACommand{
		BaseCommand: BaseCommand{
			Name:        "qa",
			Description: "Ask and upvote session questions",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("ask", "Ask the speakers a question",
					stringOption("session", "Session ID", true),
					stringOption("text", "Your question", true)),
				subcommand("upvote", "Upvote a question, or take your upvote back",
					stringOption("question", "Question ID", true)),
				subcommand("list", "Post the top questions and keep them updated",
					stringOption("session", "Session ID", true)),
				subcommand("approve", "Show a question to everyone (moderators)",
					stringOption("question", "Question ID", true)),
				subcommand("answer", "Record an answer (moderators)",
					stringOption("question", "Question ID", true),
					stringOption("text", "The answer", true)),
			},
		},
		questions: questions,
		sessions:  sessions,
		live:      live,
	}
}

// Handle processes a /qa subcommand
func (c *QACommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "ask":
		return c.handleAsk(ctx, req)
	case "upvote":
		return c.handleUpvote(ctx, req)
	case "list":
		return c.handleList(ctx, req)
	case "approve", "answer":
		if !req.Moderator {
			return nil, ErrNotModerator
		}
		return c.handleModerate(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *QACommand) handleAsk(ctx context.Context, req *Request) (*Response, error) {
	s, err := c.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: req.String("session")})
	if err != nil {
		return nil, err
	}

	q, err := c.questions.SubmitQuestion(ctx, &question.SubmitQuestionInput{
		SessionID: s.ID,
		UserID:    req.UserID,
		Content:   req.String("text"),
	})
	if err != nil {
		return nil, err
	}

	return EphemeralMessage("Question `%s` sent to %s. It appears once a moderator approves it.", q.ID, s.Title), nil
}

func (c *QACommand) handleUpvote(ctx context.Context, req *Request) (*Response, error) {
	q, err := c.questions.ToggleUpvote(ctx, &question.UpvoteInput{
		QuestionID: req.String("question"),
		UserID:     req.UserID,
	})
	if err != nil {
		return nil, err
	}

	if q.HasUpvoted(req.UserID) {
		return EphemeralMessage("Upvoted, %d vote(s) now.", q.Upvotes), nil
	}
	return EphemeralMessage("Upvote removed, %d vote(s) now.", q.Upvotes), nil
}

func (c *QACommand) handleList(ctx context.Context, req *Request) (*Response, error) {
	sessionID := req.String("session")
	questions, err := c.loadTop(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := EmbedResponse(renderQuestions(sessionID, questions), false)
	if c.live != nil {
		resp.Live = func(ctx context.Context, channelID, messageID string) error {
			return Watch(ctx, c.live, &LiveSpec[*models.Question]{
				Collection: document.CollectionQuestions,
				TargetID:   sessionID,
				ChannelID:  channelID,
				MessageID:  messageID,
				Load:       c.loadTop,
				Render:     renderQuestions,
			})
		}
	}
	return resp, nil
}

func (c *QACommand) loadTop(ctx context.Context, sessionID string) ([]*models.Question, error) {
	out, err := c.questions.TopQuestions(ctx, &question.TopQuestionsInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *QACommand) handleModerate(ctx context.Context, req *Request) (*Response, error) {
	var (
		q   *models.Question
		err error
	)
	if req.Subcommand == "approve" {
		q, err = c.questions.Approve(ctx, &question.GetQuestionInput{QuestionID: req.String("question")})
	} else {
		q, err = c.questions.Answer(ctx, &question.AnswerInput{
			QuestionID: req.String("question"),
			Answer:     req.String("text"),
			AnsweredBy: req.UserName,
		})
	}
	if err != nil {
		return nil, err
	}

	return EphemeralMessage("Question `%s` is now %s.", q.ID, q.Status), nil
}
