package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	OBBaseURL        string        `mapstructure:"ob_base_url"`
	OBPort           int           `mapstructure:"ob_port"`
	OBUsername       string        `mapstructure:"ob_username"`
	OBPassword       string        `mapstructure:"ob_password"`
	OBCredentials    string        `mapstructure:"ob_credentials"`
	OBTimeoutSeconds int64         `mapstructure:"ob_timeout_seconds"`
	OBTimeout        time.Duration `mapstructure:"-"`

	PollIntervalSeconds int64         `mapstructure:"poll_interval"`
	PollInterval        time.Duration `mapstructure:"-"`
	MarkRead            bool          `mapstructure:"mark_read"`
	PublishersFile      string        `mapstructure:"publishers_file"`
	MetricsAddr         string        `mapstructure:"metrics_addr"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads configuration into v, which may already carry bound CLI flags.
func LoadWith(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	SetDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.OBTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid ob_timeout_seconds (must not be negative)")
	}
	cfg.OBTimeout = time.Duration(cfg.OBTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

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

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "openbazaar-node")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("ob_base_url", "http://localhost")
	v.SetDefault("ob_port", openbazaar.DefaultPort)
	v.SetDefault("ob_username", "")
	v.SetDefault("ob_password", "")
	v.SetDefault("ob_credentials", "")
	v.SetDefault("ob_timeout_seconds", 0)
	v.SetDefault("poll_interval", 60) // seconds
	v.SetDefault("mark_read", true)
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/notifications.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))
}

// ClientConfig derives the daemon client settings. A prebuilt ob_credentials
// token wins over ob_username/ob_password.
func (c *Config) ClientConfig() (openbazaar.ClientConfig, error) {
	creds := strings.TrimSpace(c.OBCredentials)
	if creds == "" {
		if c.OBUsername == "" && c.OBPassword == "" {
			return openbazaar.ClientConfig{}, fmt.Errorf("ob_credentials or ob_username/ob_password must be set")
		}
		creds = openbazaar.BuildAuthHeader(c.OBUsername, c.OBPassword)
	}

	cc := openbazaar.ClientConfig{
		BaseURL:     c.OBBaseURL,
		Port:        c.OBPort,
		Credentials: creds,
		Timeout:     c.OBTimeout,
	}
	if err := cc.Validate(); err != nil {
		return openbazaar.ClientConfig{}, err
	}
	return cc, nil
}
