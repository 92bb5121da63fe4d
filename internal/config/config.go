package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage drivers accepted in ASSETLY_STORAGE_DRIVER
const (
	StorageSQLite   = "sqlite3"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	StorageDriver string
	StorageDSN    string
	GRPCAddr      string
	HTTPAddr      string
	APIToken      string
	LogLevel      string
	LogFormat     string
	RateLimit     float64 // requests per second accepted by the gRPC server
	RateBurst     int
	HTTPRate      string // per-client HTTP limit, formatted as "<limit>-<period>" e.g. "120-M"
}

// Load reads configuration from the environment (prefix ASSETLY_), after loading
// the .env files given. With no files it tries ".env" and ignores it when absent;
// an explicitly named file must exist.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ASSETLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("STORAGE_DSN", "assetly.db")
	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("HTTP_ADDR", ":8081")
	v.SetDefault("API_TOKEN", "dev-token")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT", 20.0)
	v.SetDefault("RATE_BURST", 20)
	v.SetDefault("HTTP_RATE", "120-M")

	cfg := &Config{
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		StorageDSN:    v.GetString("STORAGE_DSN"),
		GRPCAddr:      v.GetString("GRPC_ADDR"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		APIToken:      v.GetString("API_TOKEN"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		RateLimit:     v.GetFloat64("RATE_LIMIT"),
		RateBurst:     v.GetInt("RATE_BURST"),
		HTTPRate:      v.GetString("HTTP_RATE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageSQLite, StoragePostgres:
		if c.StorageDSN == "" {
			return fmt.Errorf("ASSETLY_STORAGE_DSN is required for driver %s", c.StorageDriver)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("invalid ASSETLY_STORAGE_DRIVER %q (want sqlite3, postgres or memory)", c.StorageDriver)
	}

	if c.RateLimit <= 0 {
		return fmt.Errorf("invalid ASSETLY_RATE_LIMIT %v: must be positive", c.RateLimit)
	}
	if c.RateBurst <= 0 {
		return fmt.Errorf("invalid ASSETLY_RATE_BURST %d: must be positive", c.RateBurst)
	}
	if _, err := limiter.NewRateFromFormatted(c.HTTPRate); err != nil {
		return fmt.Errorf("invalid ASSETLY_HTTP_RATE %q: %w", c.HTTPRate, err)
	}

	return nil
}
