package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/diegoclair/morning-club-bot/internal/database"
)

type Config struct {
	DiscordToken   string `envconfig:"DISCORD_TOKEN" required:"true"`
	GuildID        string `envconfig:"DISCORD_GUILD_ID" required:"true"`
	CommandPrefix  string `envconfig:"COMMAND_PREFIX" default:"!"`
	TextChannelID  string `envconfig:"TEXT_CHANNEL_ID"`  // seeds the stored config when empty
	VoiceChannelID string `envconfig:"VOICE_CHANNEL_ID"` // seeds the stored config when empty
	Timezone       string `envconfig:"TIMEZONE" default:"UTC"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"sqlite"` // sqlite|postgres
	DatabasePath   string `envconfig:"DATABASE_PATH" default:"./morning-club.db"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	DBMaxConns     int32  `envconfig:"DB_MAX_CONNS" default:"10"`

	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":3000"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty       bool   `envconfig:"LOG_PRETTY" default:"false"`
	SlackWebhookURL string `envconfig:"SLACK_WEBHOOK_URL"`

	RetryAttempts  int           `envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`

	location *time.Location
}

// Load reads environment variables into Config and validates them.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	switch database.Dialect(cfg.DatabaseDriver) {
	case database.SQLite:
	case database.Postgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required when DATABASE_DRIVER is %s", database.Postgres)
		}
	default:
		return cfg, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.RetryAttempts < 1 {
		return cfg, fmt.Errorf("RETRY_ATTEMPTS must be at least 1, got %d", cfg.RetryAttempts)
	}

	return cfg, nil
}

// Location is the timezone windows and days are evaluated in.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
