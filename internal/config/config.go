package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Fares    FaresConfig    `mapstructure:"fares"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SourceConfig holds the weather portal configuration.
type SourceConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	MaxCities         int           `mapstructure:"max_cities"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// FaresConfig holds the airport suggestion and fare-calendar configuration.
type FaresConfig struct {
	SuggestURL  string        `mapstructure:"suggest_url"`
	CalendarURL string        `mapstructure:"calendar_url"`
	Origin      string        `mapstructure:"origin"`
	QueryPrefix string        `mapstructure:"query_prefix"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// TelegramConfig holds the optional Telegram delivery configuration.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvPrefix("GETAWAY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options.
func setDefaults(v *viper.Viper) {
	v.SetDefault("source.base_url", "https://www.gismeteo.ru")
	v.SetDefault("source.max_cities", 10)
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("source.requests_per_second", 2.0)
	v.SetDefault("source.burst", 2)

	v.SetDefault("fares.suggest_url", "https://www.travelpayouts.com/widgets_suggest_params")
	v.SetDefault("fares.calendar_url", "https://min-prices.aviasales.ru/calendar_preload")
	v.SetDefault("fares.origin", "MOW")
	v.SetDefault("fares.query_prefix", "Из Москвы в ")
	v.SetDefault("fares.timeout", "15s")

	v.SetDefault("telegram.enabled", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid.
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if c.Source.MaxCities < 1 {
		return fmt.Errorf("source.max_cities must be at least 1")
	}
	if c.Source.Timeout < 1*time.Second {
		return fmt.Errorf("source.timeout must be at least 1 second")
	}
	if c.Source.RequestsPerSecond <= 0 {
		return fmt.Errorf("source.requests_per_second must be positive")
	}
	if c.Source.Burst < 1 {
		return fmt.Errorf("source.burst must be at least 1")
	}

	if c.Fares.SuggestURL == "" {
		return fmt.Errorf("fares.suggest_url is required")
	}
	if c.Fares.CalendarURL == "" {
		return fmt.Errorf("fares.calendar_url is required")
	}
	if len(c.Fares.Origin) != 3 {
		return fmt.Errorf("fares.origin must be a 3-letter IATA code")
	}
	if c.Fares.Timeout < 1*time.Second {
		return fmt.Errorf("fares.timeout must be at least 1 second")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
