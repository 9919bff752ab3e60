// Package config defines process configuration and its layered loading.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration for the competition server.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file path.
	DBPath string `koanf:"db_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Env is "production" or "development"; gates secure cookies and key checks.
	Env string `koanf:"env"`

	// CSRFKeyHex is the 32-byte CSRF secret, hex encoded. Required in production.
	CSRFKeyHex string `koanf:"csrf_key"`

	// AdminEmail and AdminPassword seed the initial admin account.
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`

	// ResendAPIKey enables outbound email when set; empty uses the noop sender.
	ResendAPIKey string `koanf:"resend_api_key"`

	// EmailFrom is the sender address for federation mail.
	EmailFrom string `koanf:"email_from"`

	// RateLimitPerSecond caps requests per IP per second.
	RateLimitPerSecond int `koanf:"rate_limit_per_second"`

	// SlowQueryMs and SlowRequestMs set the slow-log warning thresholds.
	SlowQueryMs   int `koanf:"slow_query_ms"`
	SlowRequestMs int `koanf:"slow_request_ms"`
}

// Defaults returns a Config populated with development defaults.
func Defaults() *Config {
	return &Config{
		Addr:               ":8080",
		DBPath:             "shootcomp.db",
		LogLevel:           "info",
		Env:                "development",
		AdminEmail:         "admin@shootsa.org.za",
		AdminPassword:      "change me before nationals",
		EmailFrom:          "SA Shooting <noreply@shootsa.org.za>",
		RateLimitPerSecond: 10,
		SlowQueryMs:        50,
		SlowRequestMs:      200,
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables.
// Order of precedence (low -> high):
//  1. Defaults()
//  2. file (YAML) if SHOOTCOMP_CONFIG is set
//  3. env (prefix SHOOTCOMP_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("SHOOTCOMP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// SHOOTCOMP_DB_PATH -> db_path, preserving underscores to match the
	// koanf tags on the struct.
	envProvider := env.Provider("SHOOTCOMP_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "shootcomp_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration.
// PRE: cfg is populated (defaults applied)
// POST: returns nil if the process can start with this config
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.IsProduction() && c.CSRFKeyHex == "" {
		return errors.New("csrf_key is required in production")
	}
	if c.RateLimitPerSecond < 1 {
		return errors.New("rate_limit_per_second must be at least 1")
	}
	return nil
}

// IsProduction reports whether the process runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
