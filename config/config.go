package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	Server   ServerConfig   `envPrefix:"HTTP_"`
	Database DatabaseConfig `envPrefix:"POSTGRES_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               string        `env:"PORT" envDefault:"8080"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DatabaseConfig struct {
	Host               string        `env:"HOST" envDefault:"localhost"`
	Port               string        `env:"PORT" envDefault:"5432"`
	User               string        `env:"USER" envDefault:"catalog"`
	Password           string        `env:"PASSWORD" envDefault:"catalog"`
	Name               string        `env:"DB" envDefault:"catalog"`
	SSLMode            string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns       int           `env:"MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns       int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime    time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	SlowQueryThreshold time.Duration `env:"SLOW_QUERY_THRESHOLD" envDefault:"200ms"`
}

// DSN renders a postgres:// URL understood by both pgx and lib/pq.
// Credentials and the database name are escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type LogConfig struct {
	Level    string `env:"LEVEL" envDefault:"info"`
	Encoding string `env:"ENCODING" envDefault:"json"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("POSTGRES_MAX_OPEN_CONNS must be positive, got %d", c.Database.MaxOpenConns)
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("POSTGRES_MAX_IDLE_CONNS must be between 0 and %d, got %d",
			c.Database.MaxOpenConns, c.Database.MaxIdleConns)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("invalid log encoding: %s (must be json or console)", c.Log.Encoding)
	}

	return nil
}
