package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the current value in place.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	SessionDB          *string         `json:"session_db"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if c.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *c.ServerEndpointAddr
	}
	if c.RequestTimeout != nil {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.SessionDB != nil {
		cfg.SessionDB = *c.SessionDB
	}
	return nil
}
