package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"NATS_URL", "NATS_ENABLED",
	"DISCORD_TOKEN", "DISCORD_APPLICATION_ID", "DISCORD_GUILD_ID",
	"HTTP_ADDR",
	"LOG_LEVEL", "LOG_FORMAT",
	"REMINDERS_LEAD_TIMES",
	"EVENT_ID",
}

// clearEnv blanks every variable the loader reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agendabot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []int{30, 15, 5}, cfg.Reminders.LeadTimes)
	assert.False(t, cfg.NATS.Enabled)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
redis:
  addr: redis.internal:6379
  db: 2
discord:
  token: file-token
  application_id: "1234"
log:
  level: debug
  format: console
reminders:
  lead_times: [20, 10]
event:
  id: gophercon
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "file-token", cfg.Discord.Token.Value())
	assert.Equal(t, "1234", cfg.Discord.ApplicationID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []int{20, 10}, cfg.Reminders.LeadTimes)
	assert.Equal(t, "gophercon", cfg.Event.ID)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
redis:
  addr: redis.internal:6379
discord:
  application_id: "1234"
reminders:
  lead_times: [20, 10]
`)
	t.Setenv("REDIS_ADDR", "10.0.0.5:6380")
	t.Setenv("DISCORD_APPLICATION_ID", "5678")
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("REMINDERS_LEAD_TIMES", "45, 5")
	t.Setenv("UNRELATED_SETTING", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:6380", cfg.Redis.Addr)
	assert.Equal(t, "5678", cfg.Discord.ApplicationID)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, []int{45, 5}, cfg.Reminders.LeadTimes)
}

func TestLoadBlankEnvKeepsFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
redis:
  addr: redis.internal:6379
log:
  level: debug
`)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "   ")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "bad log level",
			content: "log:\n  level: loud\n",
		},
		{
			name:    "negative lead time",
			content: "reminders:\n  lead_times: [15, -5]\n",
		},
		{
			name:    "negative redis db",
			content: "redis:\n  db: -1\n",
		},
		{
			name:    "malformed yaml",
			content: "redis: [unterminated\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("EVENT_ID"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EVENT_ID=from-dotenv\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv("EVENT_ID") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Event.ID)
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestRequireDiscord(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.RequireDiscord())

	cfg.Discord.Token = "token"
	assert.Error(t, cfg.RequireDiscord())

	cfg.Discord.ApplicationID = "1234"
	assert.NoError(t, cfg.RequireDiscord())
}

func TestSecretRedacted(t *testing.T) {
	s := Secret("hunter2")

	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.NotContains(t, fmt.Sprintf("%#v", s), "hunter2")
	assert.Equal(t, "hunter2", s.Value())
	assert.Equal(t, "", Secret("").String())
}
