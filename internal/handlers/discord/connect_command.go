package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/connection"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

// ConnectCommand handles the /connect networking command
type ConnectCommand struct {
	BaseCommand
	connections connection.Service
}

// NewConnectCommand creates a new networking command handler
func NewConnectCommand(connections connection.Service) *ConnectCommand {
	return &ConnectCommand{
		BaseCommand: BaseCommand{
			Name:        "connect",
			Description: "Network with other attendees",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("request", "Ask another attendee to connect",
					userOption("user", "Who to connect with"),
					stringOption("message", "A short note", false)),
				subcommand("accept", "Accept a connection request",
					stringOption("request", "Request ID", true)),
				subcommand("decline", "Decline a connection request",
					stringOption("request", "Request ID", true)),
				subcommand("list", "Show your connections and open requests"),
			},
		},
		connections: connections,
	}
}

// Handle processes a /connect subcommand
func (c *ConnectCommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "request":
		return c.handleRequest(ctx, req)
	case "accept":
		return c.handleAnswer(ctx, req, c.connections.Accept)
	case "decline":
		return c.handleAnswer(ctx, req, c.connections.Decline)
	case "list":
		return c.handleList(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *ConnectCommand) handleRequest(ctx context.Context, req *Request) (*Response, error) {
	conn, err := c.connections.SendRequest(ctx, &connection.SendRequestInput{
		RequesterID:   req.UserID,
		RecipientID:   req.String("user"),
		RequesterName: req.UserName,
		Message:       req.String("message"),
	})
	if err != nil {
		return nil, err
	}
	return EphemeralMessage("Request `%s` sent to %s.", conn.ID, mention(conn.RecipientID)), nil
}

type answerFunc func(ctx context.Context, input *connection.RespondInput) (*models.Connection, error)

func (c *ConnectCommand) handleAnswer(ctx context.Context, req *Request, answer answerFunc) (*Response, error) {
	conn, err := answer(ctx, &connection.RespondInput{
		ConnectionID:  req.String("request"),
		UserID:        req.UserID,
		ResponderName: req.UserName,
	})
	if err != nil {
		return nil, err
	}
	return EphemeralMessage("Request from %s %s.", mention(conn.RequesterID), conn.Status), nil
}

func (c *ConnectCommand) handleList(ctx context.Context, req *Request) (*Response, error) {
	var accepted, pending, sent []*models.Connection

	in := &connection.UserInput{UserID: req.UserID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := c.connections.AcceptedConnections(gctx, in)
		if err == nil {
			accepted = out.Connections
		}
		return err
	})
	g.Go(func() error {
		out, err := c.connections.PendingRequests(gctx, in)
		if err == nil {
			pending = out.Connections
		}
		return err
	})
	g.Go(func() error {
		out, err := c.connections.SentRequests(gctx, in)
		if err == nil {
			sent = out.Connections
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return EmbedResponse(renderConnections(req.UserID, accepted, pending, sent), true), nil
}

// renderConnections groups a user's network into accepted, received and sent
func renderConnections(userID string, accepted, pending, sent []*models.Connection) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Your network",
		Color: colorInfo,
	}
	if len(accepted)+len(pending)+len(sent) == 0 {
		embed.Description = "No connections yet. Use /connect request to reach out."
		return embed
	}

	groups := []struct {
		name  string
		conns []*models.Connection
		line  func(*models.Connection) string
	}{
		{"Connections", accepted, func(c *models.Connection) string {
			return mention(c.OtherParty(userID))
		}},
		{"Waiting for you", pending, func(c *models.Connection) string {
			line := fmt.Sprintf("%s · `%s`", mention(c.RequesterID), c.ID)
			if c.Message != "" {
				line += " · " + truncate(c.Message, 80)
			}
			return line
		}},
		{"Sent", sent, func(c *models.Connection) string {
			return mention(c.RecipientID)
		}},
	}
	for _, g := range groups {
		if len(g.conns) == 0 {
			continue
		}
		lines := make([]string, len(g.conns))
		for i, conn := range g.conns {
			lines[i] = g.line(conn)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%d)", g.name, len(g.conns)),
			Value: truncate(strings.Join(lines, "\n"), 1024),
		})
	}
	return embed
}

func mention(userID string) string {
	return "<@" + userID + ">"
}
