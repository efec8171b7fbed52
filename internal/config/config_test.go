package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadAndValidate(t *testing.T) {
	content := `
source:
  base_url: "https://weather.example.com"
  max_cities: 10
  timeout: 30s
  requests_per_second: 2.0
  burst: 2

fares:
  suggest_url: "https://suggest.example.com/params"
  calendar_url: "https://fares.example.com/calendar"
  origin: "MOW"
  query_prefix: "Из Москвы в "
  timeout: 15s

telegram:
  enabled: false

logging:
  level: "debug"
  format: "text"
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source.BaseURL != "https://weather.example.com" {
		t.Errorf("Unexpected base URL: %s", cfg.Source.BaseURL)
	}
	if cfg.Source.MaxCities != 10 {
		t.Errorf("Unexpected max cities: %d", cfg.Source.MaxCities)
	}
	if cfg.Source.Timeout != 30*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.Source.Timeout)
	}
	if cfg.Fares.Origin != "MOW" {
		t.Errorf("Unexpected origin: %s", cfg.Fares.Origin)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Unexpected logging level: %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:           "https://weather.example.com",
			MaxCities:         10,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2.0,
			Burst:             2,
		},
		Fares: FaresConfig{
			SuggestURL:  "https://suggest.example.com/params",
			CalendarURL: "https://fares.example.com/calendar",
			Origin:      "MOW",
			Timeout:     15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base url", func(c *Config) { c.Source.BaseURL = "" }},
		{"zero max cities", func(c *Config) { c.Source.MaxCities = 0 }},
		{"tiny timeout", func(c *Config) { c.Source.Timeout = 10 * time.Millisecond }},
		{"zero request rate", func(c *Config) { c.Source.RequestsPerSecond = 0 }},
		{"zero burst", func(c *Config) { c.Source.Burst = 0 }},
		{"missing suggest url", func(c *Config) { c.Fares.SuggestURL = "" }},
		{"missing calendar url", func(c *Config) { c.Fares.CalendarURL = "" }},
		{"bad origin code", func(c *Config) { c.Fares.Origin = "MOSCOW" }},
		{"telegram enabled without token", func(c *Config) { c.Telegram.Enabled = true; c.Telegram.ChatID = "42" }},
		{"telegram enabled without chat", func(c *Config) { c.Telegram.Enabled = true; c.Telegram.BotToken = "t" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	if err := validConfig().Validate(); err != nil {
		t.Errorf("Base config should be valid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}
