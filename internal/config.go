package internal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"http_server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Security    SecurityConfig `mapstructure:"security"`
	Report      ReportConfig   `mapstructure:"report"`
	Storage     StorageConfig  `mapstructure:"storage"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Source       string `mapstructure:"source"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// SecurityConfig carries the signing secret and token lifetime. It is built
// once at startup and handed to the auth service, never read from a global.
type SecurityConfig struct {
	JWTSecret           string        `mapstructure:"jwt_secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
	BCryptCost          int           `mapstructure:"bcrypt_cost"`
}

type ReportConfig struct {
	ForecastWindowDays int `mapstructure:"forecast_window_days"`
}

type StorageConfig struct {
	ReceiptDir string `mapstructure:"receipt_dir"`
}

func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return errors.New("security.jwt_secret is required")
	}
	if c.Security.AccessTokenDuration <= 0 {
		return errors.New("security.access_token_duration must be positive")
	}
	if c.Database.Source == "" {
		return errors.New("database.source is required")
	}
	return nil
}

// ApplyDefaults fills the knobs that have sensible fallbacks.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Security.BCryptCost == 0 {
		c.Security.BCryptCost = 12
	}
	if c.Report.ForecastWindowDays == 0 {
		c.Report.ForecastWindowDays = 30
	}
	if c.Storage.ReceiptDir == "" {
		c.Storage.ReceiptDir = "uploads/receipts"
	}
}

// LoadConfigFromEnv builds a Config purely from environment variables, used
// for container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	cfg := &Config{
		Environment: envString("APP_ENV", "production"),
		Server: ServerConfig{
			Port: envInt("HTTP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Source:       os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
		},
		Security: SecurityConfig{
			JWTSecret:           os.Getenv("JWT_SECRET"),
			AccessTokenDuration: envDuration("ACCESS_TOKEN_DURATION", 30*time.Minute),
			BCryptCost:          envInt("BCRYPT_COST", 12),
		},
		Report: ReportConfig{
			ForecastWindowDays: envInt("FORECAST_WINDOW_DAYS", 30),
		},
		Storage: StorageConfig{
			ReceiptDir: envString("RECEIPT_DIR", "uploads/receipts"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func (d DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{MaxOpenConns:%d MaxIdleConns:%d}", d.MaxOpenConns, d.MaxIdleConns)
}
