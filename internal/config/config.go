package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Suggest  SuggestConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        int
	Environment string
}

type DatabaseConfig struct {
	URI          string
	Name         string
	QueryTimeout time.Duration
}

type AdminConfig struct {
	Password   string
	JWTSecret  string
	SessionTTL time.Duration
}

type SuggestConfig struct {
	BaseURL string
	APIKey  string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "framerly")
	viper.SetDefault("QUERY_TIMEOUT", "5s")
	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SUGGEST_API_BASE_URL", "")
	viper.SetDefault("SUGGEST_API_KEY", "")
	viper.SetDefault("LOG_LEVEL", "info")

	queryTimeout, err := time.ParseDuration(viper.GetString("QUERY_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing QUERY_TIMEOUT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetInt("SERVER_PORT"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			URI:          viper.GetString("MONGODB_URI"),
			Name:         viper.GetString("MONGODB_DATABASE"),
			QueryTimeout: queryTimeout,
		},
		Admin: AdminConfig{
			Password:   viper.GetString("ADMIN_PASSWORD"),
			JWTSecret:  viper.GetString("JWT_SECRET_KEY"),
			SessionTTL: sessionTTL,
		},
		Suggest: SuggestConfig{
			BaseURL: viper.GetString("SUGGEST_API_BASE_URL"),
			APIKey:  viper.GetString("SUGGEST_API_KEY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}
