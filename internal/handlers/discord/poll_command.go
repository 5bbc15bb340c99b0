package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/bwmarrin/discordgo"
)

// optionSeparator splits the options of /poll create
const optionSeparator = "|"

// PollCommand handles the /poll command
type PollCommand struct {
	BaseCommand
	polls poll.Service
	live  *LiveBoard
}

// NewPollCommand creates a new poll command handler; live may be nil
func NewPollCommand(polls poll.Service, live *LiveBoard) *PollCommand {
	return &PollCommand{
		BaseCommand: BaseCommand{
			Name:        "poll",
			Description: "Vote in session polls",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("vote", "Vote in a poll",
					stringOption("poll", "Poll ID", true),
					stringOption("option", "Option ID or number, comma separated for several", true)),
				subcommand("results", "Show a poll's results",
					stringOption("poll", "Poll ID", true)),
				subcommand("live", "Post the session's polls and keep them updated",
					stringOption("session", "Session ID", true)),
				subcommand("create", "Create a draft poll (moderators)",
					stringOption("session", "Session ID", true),
					stringOption("question", "The question", true),
					stringOption("options", "Options separated by |", true),
					boolOption("multiple", "Allow selecting several options")),
				subcommand("open", "Start accepting votes (moderators)",
					stringOption("poll", "Poll ID", true)),
				subcommand("close", "Stop accepting votes (moderators)",
					stringOption("poll", "Poll ID", true)),
			},
		},
		polls: polls,
		live:  live,
	}
}

// Handle processes a /poll subcommand
func (c *PollCommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "vote":
		return c.handleVote(ctx, req)
	case "results":
		return c.handleResults(ctx, req)
	case "live":
		return c.handleLive(ctx, req)
	case "create", "open", "close":
		if !req.Moderator {
			return nil, ErrNotModerator
		}
		return c.handleManage(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *PollCommand) handleVote(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.polls.SubmitVote(ctx, &poll.SubmitVoteInput{
		PollID:    req.String("poll"),
		UserID:    req.UserID,
		OptionIDs: parseOptionIDs(req.String("option")),
	})
	if err != nil {
		return nil, err
	}

	if !out.Poll.ShowResults {
		return EphemeralMessage("Vote recorded."), nil
	}

	results, err := c.polls.Results(ctx, &poll.GetPollInput{PollID: out.Poll.ID})
	if err != nil {
		return nil, err
	}
	resp := EmbedResponse(renderPoll(results), true)
	resp.Content = "Vote recorded."
	return resp, nil
}

func (c *PollCommand) handleResults(ctx context.Context, req *Request) (*Response, error) {
	results, err := c.polls.Results(ctx, &poll.GetPollInput{PollID: req.String("poll")})
	if err != nil {
		return nil, err
	}
	return EmbedResponse(renderPoll(results), true), nil
}

func (c *PollCommand) handleLive(ctx context.Context, req *Request) (*Response, error) {
	sessionID := req.String("session")
	boards, err := c.loadBoards(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := EmbedResponse(renderPolls(sessionID, boards), false)
	if c.live != nil {
		resp.Live = func(ctx context.Context, channelID, messageID string) error {
			return Watch(ctx, c.live, &LiveSpec[*poll.ResultsOutput]{
				Collection: document.CollectionPolls,
				TargetID:   sessionID,
				ChannelID:  channelID,
				MessageID:  messageID,
				Load:       c.loadBoards,
				Render:     renderPolls,
			})
		}
	}
	return resp, nil
}

// loadBoards returns the results of every non-draft poll of a session
func (c *PollCommand) loadBoards(ctx context.Context, sessionID string) ([]*poll.ResultsOutput, error) {
	out, err := c.polls.SessionPolls(ctx, &poll.SessionPollsInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	boards := make([]*poll.ResultsOutput, 0, len(out.Polls))
	for _, p := range out.Polls {
		if p.Status == models.PollStatusDraft {
			continue
		}
		results, err := c.polls.Results(ctx, &poll.GetPollInput{PollID: p.ID})
		if err != nil {
			return nil, err
		}
		boards = append(boards, results)
	}
	return boards, nil
}

func (c *PollCommand) handleManage(ctx context.Context, req *Request) (*Response, error) {
	var (
		p   *models.Poll
		err error
	)
	switch req.Subcommand {
	case "create":
		p, err = c.polls.CreatePoll(ctx, &poll.CreatePollInput{
			SessionID:     req.String("session"),
			CreatedBy:     req.UserID,
			Question:      req.String("question"),
			Options:       strings.Split(req.String("options"), optionSeparator),
			AllowMultiple: req.Bool("multiple"),
		})
	case "open":
		p, err = c.polls.ActivatePoll(ctx, &poll.UpdatePollStatusInput{PollID: req.String("poll")})
	case "close":
		p, err = c.polls.ClosePoll(ctx, &poll.UpdatePollStatusInput{PollID: req.String("poll")})
	}
	if err != nil {
		return nil, err
	}

	return EphemeralMessage("Poll `%s` is now %s.", p.ID, p.Status), nil
}

// parseOptionIDs accepts option IDs or 1-based option numbers
func parseOptionIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && n > 0 {
			part = "option-" + strconv.Itoa(n)
		}
		ids = append(ids, part)
	}
	return ids
}
