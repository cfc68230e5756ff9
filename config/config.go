package config

import (
	"fmt"
	"strings"
	"time"

	"inventory-backend/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      logger.LogConfig

	// SKUNodeID identifies this process to the SKU generator; run replicas
	// with distinct values.
	SKUNodeID int64
	// OverdueSweepCron enables the overdue invoice sweep when non-empty.
	OverdueSweepCron string
}

type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver string
	URL    string
	// Name overrides the database named in URL when set.
	Name     string
	LogLevel string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log := logger.WithComponent("config")
		log.Debug().Msg("No .env file found")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("SKU_NODE_ID", 1)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339)
	v.SetDefault("LOG_OUTPUT", "stdout")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Env:         v.GetString("APP_ENV"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			URL:             v.GetString("DB_URL"),
			Name:            v.GetString("DB_NAME"),
			LogLevel:        v.GetString("DB_LOG_LEVEL"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Log: logger.LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			TimeFormat: v.GetString("LOG_TIME_FORMAT"),
			Output:     v.GetString("LOG_OUTPUT"),
		},
		SKUNodeID:        v.GetInt64("SKU_NODE_ID"),
		OverdueSweepCron: v.GetString("OVERDUE_SWEEP_CRON"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL:
		if c.Database.URL == "" {
			return fmt.Errorf("DB_URL is required for driver %s", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.SKUNodeID < 0 || c.SKUNodeID > 1023 {
		return fmt.Errorf("SKU_NODE_ID must be between 0 and 1023, got %d", c.SKUNodeID)
	}
	return nil
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (s ServerConfig) AllowsAllOrigins() bool {
	for _, origin := range s.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return len(s.CORSOrigins) == 0
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
