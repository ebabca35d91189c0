package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadMB    int64    `yaml:"max_upload_mb"`
}

type RosterConfig struct {
	PerProgramTags bool `yaml:"per_program_tags"`
}

type MailConfig struct {
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	User     string   `yaml:"user"`
	Password string   `yaml:"password"`
	From     string   `yaml:"from"`
	To       []string `yaml:"to"`
}

// Enabled reports whether run reports should be mailed.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && len(m.To) > 0
}

type QueueConfig struct {
	URL string `yaml:"url"`
}

func (q QueueConfig) Enabled() bool {
	return q.URL != ""
}

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Roster RosterConfig `yaml:"roster"`
	Mail   MailConfig   `yaml:"mail"`
	Queue  QueueConfig  `yaml:"queue"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			MaxUploadMB:    32,
		},
		Mail: MailConfig{
			Port: 587,
			From: "no-reply@localhost",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	if v := os.Getenv("ROSTER_PER_PROGRAM_TAGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Roster.PerProgramTags = b
		}
	}

	if host := os.Getenv("MAIL_HOST"); host != "" {
		cfg.Mail.Host = host
	}
	if port := os.Getenv("MAIL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Mail.Port = p
		}
	}
	if user := os.Getenv("MAIL_USER"); user != "" {
		cfg.Mail.User = user
	}
	if pass := os.Getenv("MAIL_PASS"); pass != "" {
		cfg.Mail.Password = pass
	}
	if from := os.Getenv("MAIL_FROM"); from != "" {
		cfg.Mail.From = from
	}
	if to := os.Getenv("MAIL_TO"); to != "" {
		cfg.Mail.To = splitList(to)
	}

	if url := os.Getenv("QUEUE_URL"); url != "" {
		cfg.Queue.URL = url
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
