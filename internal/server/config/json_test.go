package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson(t *testing.T) {

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempFile(t, `{
			"endpoint_addr_grpc": "www.example:9000",
			"database_dsn": "postgres://db",
			"secret_key": "my_secret_key",
			"log_level": "debug",
			"shutdown_timeout": 2000000000
		}`)

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		path := writeTempFile(t, `{"log_level": "warn"}`)

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, "secretKey", cfg.SecretKey)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234", SecretKey: "key"}
		require.NoError(t, parseJson(cfg, []string{"-a", "other"}))

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "key", cfg.SecretKey)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTempFile(t, `{ this is not valid json`)
		assert.ErrorContains(t, parseJson(&Config{}, []string{"-c", path}), "parse config file")
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.json")
		assert.ErrorContains(t, parseJson(&Config{}, []string{"-c", path}), "read config file")
	})
}
