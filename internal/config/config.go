package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken   string
	BaseAdminChatID int64
	BotDebug        bool
	DatabaseURL     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CachePrefix   string

	Location         *time.Location
	DefaultCapacity  int
	HolidaysFile     string
	HolidaysLocation uint
	LogLevel         logrus.Level
}

var instance *Config
var once sync.Once

// GetConfig загружает конфигурацию один раз за время жизни процесса
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Infof("No .env file loaded: %s", err.Error())
		}

		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("error loading config: %s", err.Error())
		}
		instance = cfg
	})

	return instance
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	if cfg.TelegramToken == "" {
		return nil, errors.New("could not get bot token")
	}

	cfg.BaseAdminChatID = getEnvAsInt("BASE_ADMIN_CHAT_ID", -2)
	if cfg.BaseAdminChatID == -2 {
		return nil, errors.New("could not get admin chat id")
	}

	cfg.BotDebug = getEnvAsBool("BOT_DEBUG", false)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "availability.db")

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB = int(getEnvAsInt("REDIS_DB", 0))
	cfg.CachePrefix = getEnv("CACHE_PREFIX", "availability")

	location, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = location

	cfg.DefaultCapacity = int(getEnvAsInt("DEFAULT_CAPACITY", 1))
	if cfg.DefaultCapacity < 0 {
		return nil, fmt.Errorf("DEFAULT_CAPACITY must not be negative (got %d)", cfg.DefaultCapacity)
	}

	cfg.HolidaysFile = getEnv("HOLIDAYS_FILE", "")
	cfg.HolidaysLocation = uint(getEnvAsInt("HOLIDAYS_LOCATION_ID", 0))

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// UseRedis сообщает, настроен ли общий кэш в Redis
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
