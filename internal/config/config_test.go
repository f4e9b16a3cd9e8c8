package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "smc"
password = "secret"
dbname = "availability"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 90, cfg.Availability.HorizonDays)
	assert.Equal(t, 5, cfg.Availability.PageSize)
	assert.Equal(t, "@every 15m", cfg.Refresh.Schedule)
	assert.Equal(t, "cleaner-availability-events", cfg.Kafka.Topic)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t,
		"host=localhost port=5432 user=smc password=secret dbname=availability sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[availability]
horizon_days = 30
page_size = 7

[refresh]
enabled = true
schedule = "*/5 * * * *"
concurrency = 8

[http]
allowed_origins = ["https://app.example.com"]
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Availability.HorizonDays)
	assert.Equal(t, 7, cfg.Availability.PageSize)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, "*/5 * * * *", cfg.Refresh.Schedule)
	assert.Equal(t, 8, cfg.Refresh.Concurrency)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"horizon too long": "[availability]\nhorizon_days = 400\n",
		"negative page":    "[availability]\npage_size = -1\n",
		"bad port":         "[server]\nhttp_port = 70000\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = 1"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
