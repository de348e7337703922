package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Logging LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// StorageConfig holds filesystem access configuration.
type StorageConfig struct {
	// Root confines every request path beneath this directory. Empty
	// means paths are taken as given.
	Root string `envconfig:"STORAGE_ROOT" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Storage: StorageConfig{
			Root: "",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}
