package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// interactionTimeout bounds the work behind one slash command
const interactionTimeout = 10 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	router     *Router
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	// Direct messages carry the reminders
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	logger := logging.OrNop(cfg.Logger)
	bot := &Bot{
		session:    session,
		router:     NewRouter(logger),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Messenger posts through the bot's session
func (b *Bot) Messenger() Messenger {
	return NewSessionMessenger(b.session)
}

// AddCommand queues a command to be registered on Start
func (b *Bot) AddCommand(cmd CommandHandler) error {
	return b.router.Add(cmd)
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.router.Commands() {
		if err := b.registerCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info("bot is running", zap.Int("commands", len(b.commandIDs)))
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.scope()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// scope returns the application and, for development, the guild commands live in
func (b *Bot) scope() (appID, guildID string) {
	appID = b.config.ApplicationID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// registerCommand registers a command with Discord
func (b *Bot) registerCommand(cmd CommandHandler) error {
	appID, guildID := b.scope()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID))
	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	name := i.ApplicationCommandData().Name
	resp := b.router.Dispatch(ctx, name, requestFromInteraction(i))
	if resp == nil {
		return
	}

	if err := s.InteractionRespond(i.Interaction, resp.interactionResponse()); err != nil {
		b.logger.Error("failed to respond to interaction", zap.String("command", name), zap.Error(err))
		return
	}
	if resp.Live == nil {
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		b.logger.Warn("failed to fetch posted message, it will not update", zap.String("command", name), zap.Error(err))
		return
	}
	if err := resp.Live(ctx, msg.ChannelID, msg.ID); err != nil {
		b.logger.Warn("failed to start live updates", zap.String("command", name), zap.Error(err))
	}
}
