package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Predictions data
	DataDir string `mapstructure:"DATA_DIR"`

	// Database (gameweek archive); empty disables the archive
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis; empty disables response caching
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Roster refresh
	RefreshSchedule   string `mapstructure:"REFRESH_SCHEDULE"`
	SkipInitialImport bool   `mapstructure:"SKIP_INITIAL_IMPORT"`

	// Response cache
	CacheTTL time.Duration `mapstructure:"CACHE_TTL"`

	// FPL photo lookup
	FPLBootstrapURL string        `mapstructure:"FPL_BOOTSTRAP_URL"`
	FPLTimeout      time.Duration `mapstructure:"FPL_TIMEOUT"`
	FPLRateLimit    int           `mapstructure:"FPL_RATE_LIMIT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("REFRESH_SCHEDULE", "@every 2h")
	viper.SetDefault("SKIP_INITIAL_IMPORT", false)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("FPL_BOOTSTRAP_URL", "https://fantasy.premierleague.com/api/bootstrap-static/")
	viper.SetDefault("FPL_TIMEOUT", "10s")
	viper.SetDefault("FPL_RATE_LIMIT", 10) // requests per minute

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
