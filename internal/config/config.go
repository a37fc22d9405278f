// Package config loads the server configuration from an optional YAML file
// with environment-variable overrides. The resulting Config is injected
// into components at construction; nothing here is mutated after Load.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/portfolio/backend/internal/validation"
)

// Config is the main configuration struct.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Mail       MailConfig       `yaml:"mail"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// StoreConfig holds the message store settings.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// CORSConfig holds the allowed browser origin.
type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

// RateLimitConfig holds the per-IP token bucket parameters.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// MailConfig holds the notification mail account. Empty Address or
// Password disables notification sending without failing submissions.
type MailConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	Recipient string `yaml:"recipient"`
}

// ValidationConfig selects the submission validation policy for this
// deployment: "lenient" (accumulate all errors) or "strict" (fail fast,
// title required).
type ValidationConfig struct {
	Policy string `yaml:"policy"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:     ServerConfig{Port: 8080},
		Store:      StoreConfig{Path: "contact_messages.json"},
		CORS:       CORSConfig{AllowedOrigin: "*"},
		RateLimit:  RateLimitConfig{RPS: 5, Burst: 10},
		Mail:       MailConfig{Host: "smtp.gmail.com", Port: 587},
		Validation: ValidationConfig{Policy: "lenient"},
		Logging:    LoggingConfig{Level: "INFO"},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty or the file does not exist), then
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.Validation.Policy != "lenient" && cfg.Validation.Policy != "strict" {
		return Config{}, fmt.Errorf("config: unknown validation policy %q", cfg.Validation.Policy)
	}
	return cfg, nil
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORS.AllowedOrigin = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Mail.Port = n
		}
	}
	if v := os.Getenv("EMAIL_ADDRESS"); v != "" {
		cfg.Mail.Address = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		cfg.Mail.Recipient = v
	}
	if v := os.Getenv("VALIDATION_POLICY"); v != "" {
		cfg.Validation.Policy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Address, strconv.Itoa(c.Server.Port))
}

// Policy returns the validation policy selected by this deployment.
func (c Config) Policy() validation.Policy {
	if c.Validation.Policy == "strict" {
		return validation.Strict
	}
	return validation.Lenient
}
