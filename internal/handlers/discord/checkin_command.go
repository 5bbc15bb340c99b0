package discord

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/checkin"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

// titleLookupConcurrency bounds session lookups when rendering history
const titleLookupConcurrency = 8

// CheckInCommand handles the /checkin command
type CheckInCommand struct {
	BaseCommand
	checkIns checkin.Service
	sessions session.Service
}

// NewCheckInCommand creates a new check-in command handler
func NewCheckInCommand(checkIns checkin.Service, sessions session.Service) *CheckInCommand {
	return &CheckInCommand{
		BaseCommand: BaseCommand{
			Name:        "checkin",
			Description: "Check in to sessions and see your attendance",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("in", "Check in to a session",
					stringOption("session", "Session ID", true)),
				subcommand("scan", "Check in with the text of a session QR code",
					stringOption("payload", "Scanned QR code text", true)),
				subcommand("out", "Check out of a session",
					stringOption("session", "Session ID", true)),
				subcommand("history", "Show the sessions you attended"),
			},
		},
		checkIns: checkIns,
		sessions: sessions,
	}
}

// Handle processes a /checkin subcommand
func (c *CheckInCommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "in":
		return c.handleIn(ctx, req)
	case "scan":
		return c.handleScan(ctx, req)
	case "out":
		return c.handleOut(ctx, req)
	case "history":
		return c.handleHistory(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *CheckInCommand) handleIn(ctx context.Context, req *Request) (*Response, error) {
	s, err := c.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: req.String("session")})
	if err != nil {
		return nil, err
	}

	out, err := c.checkIns.CheckIn(ctx, &checkin.CheckInInput{
		UserID:    req.UserID,
		SessionID: s.ID,
		Method:    models.CheckInMethodManual,
	})
	if err != nil {
		return nil, err
	}
	return checkInResponse(s.Title, out), nil
}

func (c *CheckInCommand) handleScan(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.checkIns.CheckInWithQR(ctx, &checkin.CheckInWithQRInput{
		UserID:  req.UserID,
		Payload: req.String("payload"),
	})
	if err != nil {
		return nil, err
	}

	title := out.CheckIn.SessionID
	if s, err := c.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: out.CheckIn.SessionID}); err == nil {
		title = s.Title
	}
	return checkInResponse(title, out), nil
}

func checkInResponse(title string, out *checkin.CheckInOutput) *Response {
	if out.Existing {
		return EphemeralMessage("You are already checked in to %s since %s.", title, out.CheckIn.CheckInTime.Format("15:04"))
	}
	return EphemeralMessage("Checked in to %s.", title)
}

func (c *CheckInCommand) handleOut(ctx context.Context, req *Request) (*Response, error) {
	closed, err := c.checkIns.CheckOutSession(ctx, &checkin.SessionUserInput{
		UserID:    req.UserID,
		SessionID: req.String("session"),
	})
	if err != nil {
		return nil, err
	}

	return EmbedResponse(renderCheckIns([]*models.CheckIn{closed}, c.sessionTitles(ctx, []*models.CheckIn{closed}), 0), true), nil
}

func (c *CheckInCommand) handleHistory(ctx context.Context, req *Request) (*Response, error) {
	var (
		history []*models.CheckIn
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = c.checkIns.UserCheckIns(gctx, &checkin.UserCheckInsInput{UserID: req.UserID, Limit: maxEmbedFields})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = c.checkIns.UserTotalAttendance(gctx, &checkin.UserCheckInsInput{UserID: req.UserID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return EphemeralMessage("You have not checked in to any session yet."), nil
	}
	return EmbedResponse(renderCheckIns(history, c.sessionTitles(ctx, history), total), true), nil
}

// sessionTitles resolves session titles, leaving out sessions that fail to load
func (c *CheckInCommand) sessionTitles(ctx context.Context, checkIns []*models.CheckIn) map[string]string {
	ids := make(map[string]struct{}, len(checkIns))
	for _, ci := range checkIns {
		ids[ci.SessionID] = struct{}{}
	}

	order := make([]string, 0, len(ids))
	for id := range ids {
		order = append(order, id)
	}
	titles := make([]string, len(order))

	var g errgroup.Group
	g.SetLimit(titleLookupConcurrency)
	for i, id := range order {
		g.Go(func() error {
			if s, err := c.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: id}); err == nil {
				titles[i] = s.Title
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]string, len(order))
	for i, id := range order {
		if titles[i] != "" {
			out[id] = titles[i]
		}
	}
	return out
}
