// Package config loads service configuration from an optional YAML file with
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cryptoquest/insight-api/utils"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	Quiz struct {
		QuestionCount int `yaml:"question_count"`
	} `yaml:"quiz"`
	Narrative struct {
		WebhookURL     string `yaml:"webhook_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"narrative"`
	Email struct {
		SMTPHost    string `yaml:"smtp_host"`
		SMTPPort    int    `yaml:"smtp_port"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		FromAddress string `yaml:"from_address"`
		FromName    string `yaml:"from_name"`
	} `yaml:"email"`
	Cleanup struct {
		Cron string `yaml:"cron"`
	} `yaml:"cleanup"`
}

// Load reads config from a YAML file (missing file is fine), then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Server.Port = utils.GetEnvOrDefault("PORT", defaultString(cfg.Server.Port, "8044"))
	cfg.Database.SQLitePath = utils.GetEnvOrDefault("DB_PATH", defaultString(cfg.Database.SQLitePath, "./cryptoquest.db"))
	cfg.Redis.Addr = utils.GetEnvOrDefault("REDIS_ADDR", defaultString(cfg.Redis.Addr, "127.0.0.1:6379"))

	if v := utils.GetEnvInt("QUIZ_QUESTION_COUNT", cfg.Quiz.QuestionCount); v > 0 {
		cfg.Quiz.QuestionCount = v
	} else {
		cfg.Quiz.QuestionCount = 10
	}

	cfg.Narrative.WebhookURL = utils.GetEnvOrDefault("NARRATIVE_WEBHOOK_URL", cfg.Narrative.WebhookURL)
	if cfg.Narrative.TimeoutSeconds <= 0 {
		cfg.Narrative.TimeoutSeconds = 30
	}

	cfg.Email.SMTPHost = utils.GetEnvOrDefault("SMTP_HOST", cfg.Email.SMTPHost)
	cfg.Email.SMTPPort = utils.GetEnvInt("SMTP_PORT", defaultInt(cfg.Email.SMTPPort, 465))
	cfg.Email.Username = utils.GetEnvOrDefault("SMTP_USERNAME", cfg.Email.Username)
	cfg.Email.Password = utils.GetEnvOrDefault("SMTP_PASSWORD", cfg.Email.Password)
	cfg.Email.FromAddress = utils.GetEnvOrDefault("FROM_EMAIL", defaultString(cfg.Email.FromAddress, "noreply@cryptoquest.app"))
	cfg.Email.FromName = utils.GetEnvOrDefault("FROM_NAME", defaultString(cfg.Email.FromName, "CryptoQuest Insights"))

	// Hourly expired-session purge unless overridden.
	cfg.Cleanup.Cron = utils.GetEnvOrDefault("CLEANUP_CRON", defaultString(cfg.Cleanup.Cron, "@hourly"))

	return cfg, nil
}

// NarrativeTimeout returns the webhook timeout as a duration.
func (c *Config) NarrativeTimeout() time.Duration {
	return time.Duration(c.Narrative.TimeoutSeconds) * time.Second
}

func defaultString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func defaultInt(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
