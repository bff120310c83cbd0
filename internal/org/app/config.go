package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingJWTSecret aborts startup: tokens must never be signed with a
// defaulted key.
var ErrMissingJWTSecret = errors.New("app: JWT_SECRET is required")

type Config struct {
	// JWTSecret signs every bearer token. Required; the service refuses to
	// start without it.
	JWTSecret string `env:"JWT_SECRET"`

	// Issuer is the iss claim stamped into tokens.
	Issuer string `env:"AUTH_ISSUER" envDefault:"orgtab"`

	// AccessTokenTTL is the bearer token lifetime.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`

	// DatabaseFile is the path to the SQLite database file.
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"orgtab.db"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses configuration from the environment and validates the
// bits that have no safe default.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}
