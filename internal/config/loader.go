package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1024 * 1024

// sections are the top-level keys environment variables may set.
var sections = map[string]struct{}{
	"redis":     {},
	"nats":      {},
	"discord":   {},
	"http":      {},
	"log":       {},
	"reminders": {},
	"event":     {},
}

// Load reads configuration with the following precedence, highest first:
//  1. Environment variables (REDIS_ADDR, DISCORD_APPLICATION_ID, ...)
//  2. The YAML file at configPath, when configPath is not empty
//  3. Defaults
//
// Environment variables map SECTION_FIELD to section.field, so
// DISCORD_APPLICATION_ID sets discord.application_id. List values such as
// REMINDERS_LEAD_TIMES are comma separated.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv adds the variables of a .env file to the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// envKeyValue maps SECTION_FIELD_NAME to section.field_name and drops
// blank variables and variables outside the known sections.
func envKeyValue(key, value string) (string, interface{}) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	parts := strings.SplitN(strings.ToLower(key), "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", nil
	}
	if _, ok := sections[parts[0]]; !ok {
		return "", nil
	}

	path := parts[0] + "." + parts[1]
	if path == "reminders.lead_times" {
		var leads []string
		for _, lead := range strings.Split(value, ",") {
			if lead = strings.TrimSpace(lead); lead != "" {
				leads = append(leads, lead)
			}
		}
		return path, leads
	}
	return path, value
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config file %s is not a regular file", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// applyDefaults fills zero values from Default.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = def.Redis.Addr
	}
	if cfg.NATS.URL == "" {
		cfg.NATS.URL = def.NATS.URL
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = def.HTTP.Addr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if len(cfg.Reminders.LeadTimes) == 0 {
		cfg.Reminders.LeadTimes = def.Reminders.LeadTimes
	}
	if cfg.Event.ID == "" {
		cfg.Event.ID = def.Event.ID
	}
}
