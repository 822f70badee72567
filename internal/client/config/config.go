package config

import "time"

// Config holds runtime settings for the gophauth CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ENDPOINT_ADDR"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	SessionDB          string        `env:"SESSION_DB"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.SessionDB = "gophauth.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays the JSON
// file, the environment and flags found in args. Later sources win.
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
	return cfg, nil
}
