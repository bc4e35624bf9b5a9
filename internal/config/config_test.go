package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a yaml config into a temp dir and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  user: wallace
  password: secret
  dbname: museum
vendors:
  opensea_api_key: "os-key"
  alchemy_api_key: "al-key"
pinning:
  enabled: true
  endpoint: "https://pins.example.com"
import:
  skiplist_path: "config/skiplist.json"
  rate_limit:
    requests_per_second: 4
temporal:
  host_port: "temporal:7233"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "os-key", cfg.Vendors.OpenSeaAPIKey)
				assert.Equal(t, "al-key", cfg.Vendors.AlchemyAPIKey)
				assert.Equal(t, "https://api.opensea.io/api/v2", cfg.Vendors.OpenSeaURL)
				assert.True(t, cfg.Pinning.Enabled)
				assert.Equal(t, "config/skiplist.json", cfg.Import.SkiplistPath)
				assert.Equal(t, float64(4), cfg.Import.RateLimit.RequestsPerSecond)
				assert.Equal(t, 2, cfg.Import.EnrichmentGroupSize)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "wallet-crawl", cfg.Temporal.CrawlTaskQueue)
			},
		},
		{
			name: "defaults",
			configFile: `
database:
  host: localhost
  dbname: museum
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, time.Minute, cfg.HTTP.MaxRetryElapsed)
				assert.True(t, cfg.Import.EnrichmentEnabled)
				assert.Equal(t, 250*time.Millisecond, cfg.Import.RateLimit.MinBackoff)
				assert.Equal(t, "https://api.tzkt.io", cfg.Tezos.APIURL)
			},
		},
		{
			name: "invalid port",
			configFile: `
server:
  port: not-a-number
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), "")
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWorkerConfig(t *testing.T) {
	cfg, err := LoadWorkerConfig(writeConfig(t, `
database:
  host: db
temporal:
  crawl_task_queue: custom-crawl
crawl_page_limit: 20
`), "")
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "custom-crawl", cfg.Temporal.CrawlTaskQueue)
	assert.Equal(t, 20, cfg.CrawlPageLimit)
	assert.Equal(t, "default", cfg.Temporal.Namespace)
}

func TestLoadSweeperConfig(t *testing.T) {
	t.Run("defaults to twice daily", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfig(t, `
database:
  host: db
  dbname: museum
`), "")
		require.NoError(t, err)
		assert.Equal(t, 12*time.Hour, cfg.QueueSweeper.Interval)
		assert.Equal(t, 50, cfg.QueueSweeper.BatchSize)
		assert.True(t, cfg.QueueSweeper.RetryFailed)
		assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	})

	t.Run("missing database host", func(t *testing.T) {
		cfg, err := LoadSweeperConfig(writeConfig(t, `
database:
  dbname: museum
`), "")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("WALLACE_SERVER_PORT", "7070")
	t.Setenv("WALLACE_VENDORS_OPENSEA_API_KEY", "from-env")

	cfg, err := LoadAPIConfig(writeConfig(t, "debug: false\n"), "")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Vendors.OpenSeaAPIKey)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "wallace",
		Password: "secret",
		DBName:   "museum",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=wallace password=secret dbname=museum sslmode=disable", cfg.DSN())
}
