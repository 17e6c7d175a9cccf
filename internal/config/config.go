package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/utils"
)

const (
	DefaultUpdateTimeout     = 30 * time.Second
	DefaultRateLimitRequests = 5
	DefaultRateLimitInterval = 2 * time.Second
	DefaultHappyImage        = "zhiguli_happy.png"
	DefaultSadImage          = "zhiguli_sad.png"
)

type Config struct {
	// BotToken and Port are read verbatim; the preflight step decides what is
	// fatal and what gets a default.
	BotToken string
	Port     string

	Lang      string
	LogLevel  string
	SentryDSN string
	SentryEnv string

	HappyImage string
	SadImage   string

	RateLimitSettings RateLimitConfig
	UpdateTimeout     time.Duration
}

type RateLimitConfig struct {
	Requests       int
	RefillInterval time.Duration
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func NewConfig() (*Config, error) {
	config := &Config{
		BotToken:  getEnv("BOT_TOKEN", ""),
		Port:      getEnv("PORT", ""),
		Lang:      getEnv("LANG", "ru"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		SentryDSN: getEnv("SENTRY_DSN", ""),
		SentryEnv: getEnv("SENTRY_ENVIRONMENT", "production"),

		HappyImage: getEnv("HAPPY_IMAGE", DefaultHappyImage),
		SadImage:   getEnv("SAD_IMAGE", DefaultSadImage),

		RateLimitSettings: RateLimitConfig{
			Requests:       getEnvInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
			RefillInterval: getEnvDuration("RATE_LIMIT_INTERVAL", DefaultRateLimitInterval),
		},

		UpdateTimeout: getEnvDuration("UPDATE_TIMEOUT", DefaultUpdateTimeout),
	}

	if err := config.validate(); err != nil {
		log.Printf("Configuration validation failed: %v", err)
		return nil, utils.WrapError(err, "configuration validation failed", map[string]any{
			"config": config,
		})
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.RateLimitSettings.Requests <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "rate limit requests must be positive", nil)
	}

	if c.RateLimitSettings.RefillInterval <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "rate limit interval must be positive", nil)
	}

	if c.UpdateTimeout <= 0 {
		return utils.WrapError(utils.ErrConfigurationError, "update timeout must be positive", nil)
	}

	if c.HappyImage == "" || c.SadImage == "" {
		return utils.WrapError(utils.ErrConfigurationError, "image paths must not be empty", nil)
	}

	return nil
}
