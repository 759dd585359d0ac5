package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// Hosted messaging API reachable by the client binaries.
	APIBaseURL        string        `mapstructure:"api_base_url"`
	APIKey            string        `mapstructure:"api_key"`
	APITimeoutSeconds int64         `mapstructure:"api_timeout_seconds"`
	APITimeout        time.Duration `mapstructure:"-"`

	// Webhook receiver.
	ListenAddr             string        `mapstructure:"listen_addr"`
	WebhookSecret          string        `mapstructure:"webhook_secret"`
	ForwardersFile         string        `mapstructure:"forwarders_file"`
	ReadTimeoutSeconds     int64         `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds    int64         `mapstructure:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int64         `mapstructure:"shutdown_timeout_seconds"`
	ReadTimeout            time.Duration `mapstructure:"-"`
	WriteTimeout           time.Duration `mapstructure:"-"`
	ShutdownTimeout        time.Duration `mapstructure:"-"`

	// Delivery dedup storage.
	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "simplemsg")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "http://localhost:3000")
	v.SetDefault("api_key", "")
	v.SetDefault("api_timeout_seconds", 15)
	v.SetDefault("listen_addr", ":3010")
	v.SetDefault("webhook_secret", "")
	v.SetDefault("forwarders_file", "")
	v.SetDefault("read_timeout_seconds", 15)
	v.SetDefault("write_timeout_seconds", 15)
	v.SetDefault("shutdown_timeout_seconds", 10)
	v.SetDefault("storage_type", "none")
	v.SetDefault("bbolt_path", "./data/deliveries.db")
	v.SetDefault("storage_ttl_seconds", int64((24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APITimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid api_timeout_seconds (must be positive seconds)")
	}
	cfg.APITimeout = time.Duration(cfg.APITimeoutSeconds) * time.Second

	if cfg.ReadTimeoutSeconds <= 0 || cfg.WriteTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid server timeouts (must be positive seconds)")
	}
	cfg.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second

	if cfg.ShutdownTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid shutdown_timeout_seconds (must be positive seconds)")
	}
	cfg.ShutdownTimeout = time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
