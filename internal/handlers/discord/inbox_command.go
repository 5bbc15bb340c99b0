package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/bwmarrin/discordgo"
)

const inboxLimit = 10

// InboxCommand handles the /inbox command
type InboxCommand struct {
	BaseCommand
	notifications notification.Service
	clock         clock.Clock
}

// NewInboxCommand creates a new inbox command handler
func NewInboxCommand(notifications notification.Service, clk clock.Clock) *InboxCommand {
	if clk == nil {
		clk = clock.New()
	}

	enabled := boolOption("enabled", "Send reminders for bookmarked sessions")
	enabled.Required = true

	return &InboxCommand{
		BaseCommand: BaseCommand{
			Name:        "inbox",
			Description: "Read your notifications",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("list", "Show recent notifications",
					boolOption("unread", "Only unread notifications")),
				subcommand("read", "Mark every notification as read"),
				subcommand("clear", "Delete every notification"),
				subcommand("reminders", "Turn session reminders on or off", enabled),
			},
		},
		notifications: notifications,
		clock:         clk,
	}
}

// Handle processes an /inbox subcommand
func (c *InboxCommand) Handle(ctx context.Context, req *Request) (*Response, error) {
	switch req.Subcommand {
	case "list":
		return c.handleList(ctx, req)
	case "read":
		if err := c.notifications.MarkAllRead(ctx, &notification.MarkAllReadInput{UserID: req.UserID}); err != nil {
			return nil, err
		}
		return EphemeralMessage("All notifications marked as read."), nil
	case "clear":
		if err := c.notifications.DeleteAllNotifications(ctx, &notification.DeleteAllNotificationsInput{UserID: req.UserID}); err != nil {
			return nil, err
		}
		return EphemeralMessage("Inbox cleared."), nil
	case "reminders":
		return c.handleReminders(ctx, req)
	default:
		return nil, ErrUnknownSubcommand
	}
}

func (c *InboxCommand) handleList(ctx context.Context, req *Request) (*Response, error) {
	out, err := c.notifications.ListNotifications(ctx, &notification.ListNotificationsInput{
		UserID:     req.UserID,
		UnreadOnly: req.Bool("unread"),
		Limit:      inboxLimit,
	})
	if err != nil {
		return nil, err
	}

	unread, err := c.notifications.UnreadCount(ctx, &notification.UnreadCountInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	return EmbedResponse(renderInbox(out.Notifications, unread, c.clock.Now()), true), nil
}

func (c *InboxCommand) handleReminders(ctx context.Context, req *Request) (*Response, error) {
	settings, err := c.notifications.LoadSettings(ctx, &notification.LoadSettingsInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	settings.SessionReminders = req.Bool("enabled")
	if err := c.notifications.SaveSettings(ctx, &notification.SaveSettingsInput{
		UserID:   req.UserID,
		Settings: settings,
	}); err != nil {
		return nil, err
	}

	if settings.SessionReminders {
		return EphemeralMessage("Session reminders are on for new bookmarks."), nil
	}
	return EphemeralMessage("Session reminders are off for new bookmarks."), nil
}

func renderInbox(notifications []*models.Notification, unread int, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Inbox",
		Description: fmt.Sprintf("%d unread", unread),
		Color:       colorInfo,
	}
	if len(notifications) == 0 {
		embed.Description = "Nothing here."
		return embed
	}

	for _, n := range notifications {
		name := n.Title
		if !n.IsRead {
			name = "● " + name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(name, 256),
			Value: fmt.Sprintf("%s\n%s", truncate(n.Body, 900), notification.FormatRelativeTime(n.CreatedAt, now)),
		})
	}
	return embed
}
