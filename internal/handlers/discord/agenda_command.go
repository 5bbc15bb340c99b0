package discord

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/services/bookmark"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// scheduleLimit keeps the schedule inside one embed
const scheduleLimit = maxEmbedFields

// AgendaCommand handles the /agenda command
type AgendaCommand struct {
	BaseCommand
	sessions  session.Service
	bookmarks bookmark.Provider
	eventID   string
}

// NewAgendaCommand creates a new agenda command handler
func NewAgendaCommand(sessions session.Service, bookmarks bookmark.Provider, eventID string) *AgendaCommand {
	return &AgendaCommand{
		BaseCommand: BaseCommand{
			Name:        "agenda",
			Description: "Browse the schedule and manage your bookmarks",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("schedule", "Show the event schedule",
					stringOption("search", "Filter by title, description or tag", false)),
				subcommand("bookmark", "Bookmark a session or remove its bookmark",
					stringOption("session", "Session ID", true)),
				subcommand("mine", "Show your bookmarked sessions"),
				subcommand("clear", "Remove all your bookmarks and reminders"),
			},
		},
		sessions:  sessions,
		bookmarks: bookmarks,
		eventID:   eventID,
	}
}

// Handle processes an /agenda subcommand
func (c *AgendaCommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "schedule":
		return c.handleSchedule(ctx, req)
	case "bookmark":
		return c.handleBookmark(ctx, req)
	case "mine":
		return c.handleMine(ctx, req)
	case "clear":
		return c.handleClear(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *AgendaCommand) handleSchedule(ctx context.Context, req *Request) (*Response, error) {
	var (
		out *session.ListSessionsOutput
		err error
	)
	title := "Schedule"
	if query := req.String("search"); query != "" {
		title = "Sessions matching “" + query + "”"
		out, err = c.sessions.SearchSessions(ctx, &session.SearchSessionsInput{
			EventID: c.eventID,
			Query:   query,
		})
	} else {
		out, err = c.sessions.ListSessions(ctx, &session.ListSessionsInput{
			EventID: c.eventID,
			Limit:   scheduleLimit,
		})
	}
	if err != nil {
		return nil, err
	}

	manager, err := c.bookmarks.For(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return EmbedResponse(renderSessions(title, out.Sessions, manager.IsBookmarked), true), nil
}

func (c *AgendaCommand) handleBookmark(ctx context.Context, req *Request) (*Response, error) {
	s, err := c.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: req.String("session")})
	if err != nil {
		return nil, err
	}

	manager, err := c.bookmarks.For(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	out, err := manager.ToggleBookmark(ctx, &bookmark.ToggleBookmarkInput{
		SessionID:    s.ID,
		SessionTitle: s.Title,
		StartTime:    s.StartTime,
	})
	if err != nil {
		return nil, err
	}

	return EmbedResponse(renderToggle(s, out), true), nil
}

func (c *AgendaCommand) handleMine(ctx context.Context, req *Request) (*Response, error) {
	manager, err := c.bookmarks.For(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	sessions, err := manager.BookmarkedSessionsData(ctx)
	if err != nil {
		return nil, err
	}

	return EmbedResponse(renderSessions("Your agenda", sessions, nil), true), nil
}

func (c *AgendaCommand) handleClear(ctx context.Context, req *Request) (*Response, error) {
	manager, err := c.bookmarks.For(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	count := manager.Count()
	if count == 0 {
		return EphemeralMessage("You have no bookmarks."), nil
	}
	if err := manager.ClearAllBookmarks(ctx); err != nil {
		return nil, err
	}

	return EphemeralMessage("Removed %d bookmark(s) and their reminders.", count), nil
}
