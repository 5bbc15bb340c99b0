package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo    = 0x5865f2
	colorSuccess = 0x57f287
	colorError   = 0xed4245
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle runs a subcommand and returns what to reply with
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Request is a decoded slash-command invocation
type Request struct {
	UserID    string
	UserName  string
	ChannelID string

	// Moderator is set for members allowed to manage messages
	Moderator bool

	// Subcommand is the invoked subcommand name
	Subcommand string

	options map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// NewRequest builds a request for subcommand with string options, mainly for tests
func NewRequest(userID, subcommand string, options map[string]string) *Request {
	req := &Request{
		UserID:     userID,
		UserName:   userID,
		Subcommand: subcommand,
		options:    make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options)),
	}
	for name, value := range options {
		req.options[name] = &discordgo.ApplicationCommandInteractionDataOption{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		}
	}
	return req
}

// requestFromInteraction decodes the user, channel, subcommand and its options
func requestFromInteraction(i *discordgo.InteractionCreate) *Request {
	req := &Request{
		ChannelID: i.ChannelID,
		options:   make(map[string]*discordgo.ApplicationCommandInteractionDataOption),
	}

	// Member is set in guilds, User in DMs
	if i.Member != nil && i.Member.User != nil {
		req.UserID = i.Member.User.ID
		req.UserName = i.Member.User.Username
		if i.Member.Nick != "" {
			req.UserName = i.Member.Nick
		}
		req.Moderator = i.Member.Permissions&discordgo.PermissionManageMessages != 0
	} else if i.User != nil {
		req.UserID = i.User.ID
		req.UserName = i.User.Username
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return req
	}
	sub := data.Options[0]
	req.Subcommand = sub.Name
	for _, opt := range sub.Options {
		req.options[opt.Name] = opt
	}
	return req
}

// String returns a string option, empty when absent
func (r *Request) String(name string) string {
	opt, ok := r.options[name]
	if !ok {
		return ""
	}
	if s, ok := opt.Value.(string); ok {
		return s
	}
	return fmt.Sprint(opt.Value)
}

// Bool returns a boolean option, false when absent
func (r *Request) Bool(name string) bool {
	opt, ok := r.options[name]
	if !ok {
		return false
	}
	switch v := opt.Value.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Response is what a command replies with
type Response struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Ephemeral bool

	// Live, when set, is started with the posted message so it can keep it updated
	Live LiveStarter
}

// LiveStarter binds a posted message to a live update source
type LiveStarter func(ctx context.Context, channelID, messageID string) error

func (r *Response) interactionResponse() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
		Embeds:  r.Embeds,
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// EphemeralMessage is a plain reply only the invoking user sees
func EphemeralMessage(format string, args ...any) *Response {
	return &Response{
		Content:   fmt.Sprintf(format, args...),
		Ephemeral: true,
	}
}

// EmbedResponse wraps one embed
func EmbedResponse(embed *discordgo.MessageEmbed, ephemeral bool) *Response {
	return &Response{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Ephemeral: ephemeral,
	}
}

// ErrorResponse is the ephemeral red embed shown when a command fails
func ErrorResponse(message string) *Response {
	return EmbedResponse(&discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}, true)
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func boolOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func userOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    true,
	}
}
