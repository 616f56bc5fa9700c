// Package config reads process settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"

	devSessionSecret = "nexus-prive-dev-secret"
)

type Config struct {
	Port        string
	StoreDriver string
	VaultDir    string
	DatabaseURL string
	DBDriver    string
	RabbitMQURL string

	MailHost  string
	MailPort  int
	MailUser  string
	MailPass  string
	MailFrom  string
	DeskEmail string

	GeminiAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	PipelineStrict bool
	CatalogPath    string
	LogLevel       string
	CORSOrigins    []string
}

// Load reads .env (if any) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an arbitrary lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:        get("PORT", "8080"),
		StoreDriver: strings.ToLower(get("STORE_DRIVER", StoreFile)),
		VaultDir:    get("VAULT_DIR", "./data"),
		DatabaseURL: get("DATABASE_URL", ""),
		DBDriver:    get("DB_DRIVER", "pgx"),
		RabbitMQURL: get("RABBITMQ_URL", ""),

		MailHost:  get("MAIL_HOST", ""),
		MailUser:  get("MAIL_USER", ""),
		MailPass:  get("MAIL_PASS", ""),
		MailFrom:  get("MAIL_FROM", "vault@nexusprive.com"),
		DeskEmail: get("DESK_EMAIL", ""),

		GeminiAPIKey: get("GEMINI_API_KEY", get("API_KEY", "")),
		GeminiModel:  get("GEMINI_MODEL", "gemini-3-flash-preview"),

		SessionSecret: get("SESSION_SECRET", ""),
		CatalogPath:   get("CATALOG_PATH", ""),
		LogLevel:      get("LOG_LEVEL", "info"),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "*")),
	}

	var errs []error

	port, err := strconv.Atoi(get("MAIL_PORT", "587"))
	if err != nil {
		errs = append(errs, fmt.Errorf("MAIL_PORT: %w", err))
	}
	cfg.MailPort = port

	if cfg.GenerationTimeout, err = time.ParseDuration(get("GENERATION_TIMEOUT", "20s")); err != nil {
		errs = append(errs, fmt.Errorf("GENERATION_TIMEOUT: %w", err))
	}
	if cfg.SessionTTL, err = time.ParseDuration(get("SESSION_TTL", "8h")); err != nil {
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
	}
	if cfg.PipelineStrict, err = strconv.ParseBool(get("PIPELINE_STRICT", "false")); err != nil {
		errs = append(errs, fmt.Errorf("PIPELINE_STRICT: %w", err))
	}

	switch cfg.StoreDriver {
	case StoreFile:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.StoreDriver))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Secret returns the session signing key, falling back to a fixed
// development key when none is configured.
func (c *Config) Secret() []byte {
	if c.SessionSecret == "" {
		return []byte(devSessionSecret)
	}
	return []byte(c.SessionSecret)
}

func (c *Config) UsingDevSecret() bool { return c.SessionSecret == "" }

func (c *Config) EventsEnabled() bool { return c.RabbitMQURL != "" }

func (c *Config) MailEnabled() bool { return c.MailHost != "" && c.DeskEmail != "" }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
