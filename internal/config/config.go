// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	YouTube  YouTubeConfig
	App      AppConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration. URL carries the
// full connection string; the pool fields tune pgxpool.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DatabaseConfig struct {
	URL            string
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration
}

// YouTubeConfig contains the metadata provider credential.
type YouTubeConfig struct {
	APIKey string
}

// AppConfig contains application-level behavior settings.
type AppConfig struct {
	// DefaultUsername is attributed to comments posted without a username.
	DefaultUsername string
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// ErrMissingConfig marks a required process-wide input that is absent. It is
// a server-side configuration fault, never a client input error.
var ErrMissingConfig = errors.New("missing required configuration")

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read environment variables
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate reports required settings that are absent. The database connection
// string and the YouTube API key have no sane defaults and must be provided.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("%w: database.url (APP_DATABASE_URL)", ErrMissingConfig)
	}
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("%w: youtube.apikey (APP_YOUTUBE_APIKEY)", ErrMissingConfig)
	}
	return nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Database. URL is empty by default so Validate can insist on it; the
	// SetDefault still registers the key for env var binding.
	viper.SetDefault("database.url", "")
	viper.SetDefault("database.maxconnections", 10)
	viper.SetDefault("database.minconnections", 2)
	viper.SetDefault("database.maxidletime", 10*time.Minute)
	viper.SetDefault("database.maxlifetime", 1*time.Hour)

	// YouTube
	viper.SetDefault("youtube.apikey", "")

	// App
	viper.SetDefault("app.defaultusername", "Anonymous")

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
