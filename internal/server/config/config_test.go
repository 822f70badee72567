package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	c.SecretKey = ""
	assert.Error(t, c.Validate())

	c.LoadDefaults()
	c.EndpointAddrGRPC = ""
	assert.Error(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempFile(t, `{
		"endpoint_addr_grpc": "json:1",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"log_level": "warn",
		"shutdown_timeout": "3s"
	}`)

	t.Setenv("GOPHAUTH_SECRET_KEY", "env-secret")
	t.Setenv("GOPHAUTH_LOG_LEVEL", "debug")

	cfg, err := LoadConfig([]string{"-c", path, "-l", "error", "-x", "ignored"})
	require.NoError(t, err)

	want := &Config{
		EndpointAddrGRPC: "json:1",
		DatabaseDSN:      "postgres://json",
		SecretKey:        "env-secret",
		LogLevel:         "error",
		ShutdownTimeout:  3 * time.Second,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	want := &Config{}
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_EmptySecretRejected(t *testing.T) {
	_, err := LoadConfig([]string{"-s="})
	assert.Error(t, err)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	t.Setenv("GOPHAUTH_SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig(nil)
	assert.ErrorContains(t, err, "parse env")
}
