package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// EthereumConfig holds Ethereum RPC configuration used for mint date lookups
type EthereumConfig struct {
	RPCURL       string `mapstructure:"rpc_url"`
	LogStepBlock uint64 `mapstructure:"log_step_block"`
}

// TezosConfig holds TzKT configuration used for mint date lookups
type TezosConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	CrawlTaskQueue                     string  `mapstructure:"crawl_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// VendorsConfig holds vendor API configurations
type VendorsConfig struct {
	ObjktURL      string `mapstructure:"objkt_url"`
	OpenSeaURL    string `mapstructure:"opensea_url"`
	OpenSeaAPIKey string `mapstructure:"opensea_api_key"`
	OpenSeaChain  string `mapstructure:"opensea_chain"`
	AlchemyURL    string `mapstructure:"alchemy_url"`
	AlchemyAPIKey string `mapstructure:"alchemy_api_key"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
}

// PinningConfig holds the pinning service configuration
type PinningConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	AccessToken string `mapstructure:"access_token"`
}

// RateLimitConfig holds adaptive limiter configuration for enrichment calls
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MinBackoff        time.Duration `mapstructure:"min_backoff"`
	MaxBackoff        time.Duration `mapstructure:"max_backoff"`
}

// ImportConfig holds pipeline behavior configuration
type ImportConfig struct {
	EnrichmentEnabled   bool            `mapstructure:"enrichment_enabled"`
	EnrichmentGroupSize int             `mapstructure:"enrichment_group_size"`
	DetectMime          bool            `mapstructure:"detect_mime"`
	SkiplistPath        string          `mapstructure:"skiplist_path"`
	RateLimit           RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueSweeperConfig holds configuration for the scheduled queue processor
type QueueSweeperConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	RetryFailed  bool          `mapstructure:"retry_failed"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	RunOnStartup bool          `mapstructure:"run_on_startup"`
	LeaseTimeout time.Duration `mapstructure:"lease_timeout"`
}

// PipelineConfig groups what every process running imports needs
type PipelineConfig struct {
	Database DatabaseConfig `mapstructure:"database"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Ethereum EthereumConfig `mapstructure:"ethereum"`
	Tezos    TezosConfig    `mapstructure:"tezos"`
	Vendors  VendorsConfig  `mapstructure:"vendors"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Pinning  PinningConfig  `mapstructure:"pinning"`
	Import   ImportConfig   `mapstructure:"import"`
}

// APIConfig holds configuration for the trigger API server
type APIConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
	Server         ServerConfig   `mapstructure:"server"`
	Temporal       TemporalConfig `mapstructure:"temporal"`
}

// WorkerConfig holds configuration for the wallet crawl worker
type WorkerConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
	Temporal       TemporalConfig `mapstructure:"temporal"`
	CrawlPageLimit int            `mapstructure:"crawl_page_limit"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
	QueueSweeper   QueueSweeperConfig `mapstructure:"queue_sweeper"`
}

// setPipelineDefaults registers defaults shared by every service
func setPipelineDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "WALLACE_IMPORTS")
	v.SetDefault("ethereum.log_step_block", 2000000)
	v.SetDefault("tezos.api_url", "https://api.tzkt.io")
	v.SetDefault("vendors.objkt_url", "https://data.objkt.com/v3/graphql")
	v.SetDefault("vendors.opensea_url", "https://api.opensea.io/api/v2")
	v.SetDefault("vendors.opensea_chain", "ethereum")
	v.SetDefault("vendors.alchemy_url", "https://eth-mainnet.g.alchemy.com")
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.max_retry_elapsed", "1m")
	v.SetDefault("import.enrichment_enabled", true)
	v.SetDefault("import.enrichment_group_size", 2)
	v.SetDefault("import.detect_mime", true)
	v.SetDefault("import.rate_limit.requests_per_second", 2)
	v.SetDefault("import.rate_limit.burst", 2)
	v.SetDefault("import.rate_limit.min_backoff", "250ms")
	v.SetDefault("import.rate_limit.max_backoff", "30s")
}

// setTemporalDefaults registers Temporal defaults
func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.crawl_task_queue", "wallet-crawl")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 10)
	v.SetDefault("temporal.worker_activities_per_second", 5)
}

// readConfig reads the config file, tolerating its absence
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 300) // queue runs are synchronous
	v.SetDefault("server.idle_timeout", 120)
	setPipelineDefaults(v)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the wallet crawl worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	setPipelineDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("crawl_page_limit", 200)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setPipelineDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("queue_sweeper.interval", "12h") // twice daily
	v.SetDefault("queue_sweeper.batch_size", 50)
	v.SetDefault("queue_sweeper.retry_failed", true)
	v.SetDefault("queue_sweeper.max_attempts", 5)
	v.SetDefault("queue_sweeper.run_on_startup", true)
	v.SetDefault("queue_sweeper.lease_timeout", "1h")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("WALLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.auto_migrate",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Chains
		"ethereum.rpc_url",
		"ethereum.log_step_block",
		"tezos.api_url",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.crawl_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Vendors
		"vendors.objkt_url",
		"vendors.opensea_url",
		"vendors.opensea_api_key",
		"vendors.opensea_chain",
		"vendors.alchemy_url",
		"vendors.alchemy_api_key",
		// Outbound HTTP
		"http.timeout",
		"http.max_retry_elapsed",
		// Pinning
		"pinning.enabled",
		"pinning.endpoint",
		"pinning.access_token",
		// Import pipeline
		"import.enrichment_enabled",
		"import.enrichment_group_size",
		"import.detect_mime",
		"import.skiplist_path",
		"import.rate_limit.requests_per_second",
		"import.rate_limit.burst",
		"import.rate_limit.min_backoff",
		"import.rate_limit.max_backoff",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Worker
		"crawl_page_limit",
		// Queue sweeper
		"queue_sweeper.interval",
		"queue_sweeper.batch_size",
		"queue_sweeper.retry_failed",
		"queue_sweeper.max_attempts",
		"queue_sweeper.run_on_startup",
		"queue_sweeper.lease_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
