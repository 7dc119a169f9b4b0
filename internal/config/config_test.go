package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("BASE_ADMIN_CHAT_ID", "12345")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramToken)
	assert.Equal(t, int64(12345), cfg.BaseAdminChatID)
	assert.Equal(t, "availability.db", cfg.DatabaseURL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 1, cfg.DefaultCapacity)
	assert.Equal(t, "availability", cfg.CachePrefix)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.UseRedis())
	assert.False(t, cfg.BotDebug)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DEFAULT_CAPACITY", "5")
	t.Setenv("HOLIDAYS_FILE", "holidays.json")
	t.Setenv("HOLIDAYS_LOCATION_ID", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BOT_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5, cfg.DefaultCapacity)
	assert.Equal(t, "holidays.json", cfg.HolidaysFile)
	assert.Equal(t, uint(3), cfg.HolidaysLocation)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.BotDebug)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing token", env: map[string]string{"TELEGRAM_BOT_TOKEN": "", "BASE_ADMIN_CHAT_ID": "1"}},
		{name: "missing admin", env: map[string]string{"TELEGRAM_BOT_TOKEN": "token", "BASE_ADMIN_CHAT_ID": "x"}},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "negative capacity", env: map[string]string{"DEFAULT_CAPACITY": "-1"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
