package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	t.Setenv("SITE_ID", "")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, "demo", cfg.SiteID)
	assert.Equal(t, StorageMinIO, cfg.Storage.Driver)
	assert.Equal(t, "map-pins", cfg.MinIOStore.Bucket)
	assert.Equal(t, 1000, cfg.Pins.MaxPins)
	assert.Equal(t, 500, cfg.Pins.MaxMessageLength)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "pin-events", cfg.BrokerConfig.StreamName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.BrokerConfig.Brokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SITE_ID", "harbour")
	t.Setenv("REDIS_URI", "redis://cache:6379/1")
	t.Setenv("BROKER_URI", "redis://events:6379")

	cfg, err := Load("./config.yml")
	require.NoError(t, err)

	assert.Equal(t, "harbour", cfg.SiteID)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisStore.URI)
	assert.Equal(t, "redis://events:6379", cfg.BrokerConfig.URI)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SITE_ID", "")

	path := writeConfig(t, "environment: prod\nstorage:\n  driver: memory\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultSiteID, cfg.SiteID)
	assert.Equal(t, "map-pins", cfg.Pins.StoreName)
	assert.Equal(t, "pins", cfg.Pins.Key)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "1M", cfg.HTTP.BodyLimit)
	assert.Equal(t, "none", cfg.BrokerConfig.Driver)

	assert.Equal(t, int64(5000), cfg.MinIOStore.Timeout)
	assert.Equal(t, int16(5000), cfg.DBConfig.ConnectionTimeout)
	assert.Equal(t, int16(5000), cfg.DBConfig.QueryTimeout)
	assert.Equal(t, int64(5000), cfg.PostgresConfig.Timeout)
	assert.Equal(t, int64(5000), cfg.RedisStore.Timeout)
	assert.Equal(t, 1000, cfg.PublisherConfig.Timeout)
}

func TestLoad_ExplicitTimeoutsKept(t *testing.T) {
	t.Setenv("SITE_ID", "")

	path := writeConfig(t, "environment: prod
storage:
  driver: memory
"+
		"redis_store:
  timeout_in_ms: 250
publisher_config:
  timeout_in_ms: 75
")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(250), cfg.RedisStore.Timeout)
	assert.Equal(t, 75, cfg.PublisherConfig.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown storage", "environment: prod\nstorage:\n  driver: floppy\n"},
		{"unknown broker", "environment: prod\nstorage:\n  driver: memory\nbroker_config:\n  driver: carrier-pigeon\n"},
		{"minio without bucket", "environment: prod\nstorage:\n  driver: minio\n"},
		{"malformed yaml", "environment: [prod\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.IsType(t, Error{}, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.IsType(t, Error{}, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}
