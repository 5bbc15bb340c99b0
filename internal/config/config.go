// Package config loads agendabot configuration from defaults, an optional
// YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/qrcode"
)

// Config is the full bot configuration.
type Config struct {
	Redis     RedisConfig     `koanf:"redis"`
	NATS      NATSConfig      `koanf:"nats"`
	Discord   DiscordConfig   `koanf:"discord"`
	HTTP      HTTPConfig      `koanf:"http"`
	Log       logging.Config  `koanf:"log"`
	Reminders RemindersConfig `koanf:"reminders"`
	Event     EventConfig     `koanf:"event"`
}

// RedisConfig holds the document store connection.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password Secret `koanf:"password"`
	DB       int    `koanf:"db"`
}

// NATSConfig selects NATS as the change-feed transport when enabled.
type NATSConfig struct {
	URL     string `koanf:"url"`
	Enabled bool   `koanf:"enabled"`
}

// DiscordConfig holds the bot credentials.
type DiscordConfig struct {
	Token         Secret `koanf:"token"`
	ApplicationID string `koanf:"application_id"`

	// GuildID registers commands on one server only, for development
	GuildID string `koanf:"guild_id"`
}

// HTTPConfig holds the health and metrics listener.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// RemindersConfig holds the default reminder lead-times in minutes.
type RemindersConfig struct {
	LeadTimes []int `koanf:"lead_times"`
}

// EventConfig identifies the conference event embedded in QR payloads.
type EventConfig struct {
	ID string `koanf:"id"`
}

// Secret is a string redacted when printed.
type Secret string

// String always returns a redacted value for non-empty secrets.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

// GoString redacts %#v output.
func (s Secret) GoString() string {
	return "Secret([REDACTED])"
}

// Value returns the secret itself.
func (s Secret) Value() string {
	return string(s)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		NATS: NATSConfig{
			URL: "nats://127.0.0.1:4222",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Log: *logging.NewDefaultConfig(),
		Reminders: RemindersConfig{
			LeadTimes: []int{30, 15, 5},
		},
		Event: EventConfig{
			ID: qrcode.DefaultEventID,
		},
	}
}

// Validate checks the loaded values. The Discord token is required only by
// commands that connect to Discord, see RequireDiscord.
func (c *Config) Validate() error {
	if c.Redis.Addr == "" {
		return errors.New("redis.addr is required")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("redis.db must not be negative, got %d", c.Redis.DB)
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		return errors.New("nats.url is required when nats is enabled")
	}
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	for _, lead := range c.Reminders.LeadTimes {
		if lead <= 0 {
			return fmt.Errorf("reminders.lead_times must be positive, got %d", lead)
		}
	}
	return nil
}

// RequireDiscord checks the settings needed to open a bot session.
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("discord.token is required")
	}
	if c.Discord.ApplicationID == "" {
		return errors.New("discord.application_id is required")
	}
	return nil
}
