package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_GUILD_ID", "guild")
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "token", cfg.DiscordToken)
		assert.Equal(t, "guild", cfg.GuildID)
		assert.Equal(t, "!", cfg.CommandPrefix)
		assert.Equal(t, "sqlite", cfg.DatabaseDriver)
		assert.Equal(t, "./morning-club.db", cfg.DatabasePath)
		assert.Equal(t, int32(10), cfg.DBMaxConns)
		assert.Equal(t, ":3000", cfg.HTTPAddr)
		assert.Equal(t, 3, cfg.RetryAttempts)
		assert.Equal(t, time.Second, cfg.RetryBaseDelay)
		assert.Equal(t, time.UTC, cfg.Location())
	})

	t.Run("should fail without a token", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("DISCORD_TOKEN"))

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("should reject an unknown timezone", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TIMEZONE", "Mars/Olympus")

		_, err := Load()
		assert.ErrorContains(t, err, "TIMEZONE")
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_DRIVER", "oracle")

		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_DRIVER")
	})

	t.Run("should require a url for postgres", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_DRIVER", "postgres")

		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")

		t.Setenv("DATABASE_URL", "postgres://club@localhost/club")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://club@localhost/club", cfg.DatabaseURL)
	})

	t.Run("should parse durations and zones", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RETRY_BASE_DELAY", "250ms")
		t.Setenv("TIMEZONE", "UTC")
		t.Setenv("LOG_PRETTY", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
		assert.True(t, cfg.LogPretty)
	})
}
