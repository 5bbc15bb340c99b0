package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/agendabot/internal/handlers/discord Messenger

// Messenger is the slice of the Discord API used outside interactions
type Messenger interface {
	// SendDirect posts embed in a DM with the user
	SendDirect(userID string, embed *discordgo.MessageEmbed) error

	// Edit replaces the embed of a posted message
	Edit(channelID, messageID string, embed *discordgo.MessageEmbed) error
}

// sessionMessenger implements Messenger on a gateway session
type sessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger wraps a discordgo session
func NewSessionMessenger(s *discordgo.Session) Messenger {
	return &sessionMessenger{session: s}
}

func (m *sessionMessenger) SendDirect(userID string, embed *discordgo.MessageEmbed) error {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}
	if _, err := m.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

func (m *sessionMessenger) Edit(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	if _, err := m.session.ChannelMessageEditEmbed(channelID, messageID, embed); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", messageID, err)
	}
	return nil
}
