package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the tracker.
type Config struct {
	TelegramToken   string
	DatabaseURL     string
	ReportTime      string        // HH:MM, in DefaultTimezone
	ReportInterval  time.Duration // when set, reports go out periodically instead of daily
	DefaultTimezone string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReportTime:      strings.TrimSpace(os.Getenv("REPORT_TIME")),
		ReportInterval:  parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS"))),
		DefaultTimezone: strings.TrimSpace(os.Getenv("DEFAULT_TIMEZONE")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "time_tracker.db"
	}

	if cfg.ReportTime == "" {
		cfg.ReportTime = "21:00"
	}

	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return cfg, fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", cfg.DefaultTimezone, err)
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
