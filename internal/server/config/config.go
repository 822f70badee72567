// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the gophauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing tokens (HS256).
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long a graceful stop may wait for in-flight calls.
type Config struct {
	EndpointAddrGRPC string        `env:"ENDPOINT_ADDR_GRPC"`
	DatabaseDSN      string        `env:"DATABASE_DSN"`
	SecretKey        string        `env:"SECRET_KEY"`
	LogLevel         string        `env:"LOG_LEVEL"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key must not be empty")
	}
	if c.EndpointAddrGRPC == "" {
		return errors.New("grpc endpoint address must not be empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}
