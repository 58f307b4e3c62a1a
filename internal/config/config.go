// Package config loads Semrush MCP server configuration from TOML files
// with environment variable and flag overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/searchgrid/semrush-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Semrush SemrushConfig        `toml:"semrush"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// SemrushConfig contains upstream Semrush API settings.
type SemrushConfig struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the upstream request timeout as a duration.
func (s SemrushConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing file is not an error; defaults plus env overrides apply.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies SEMRUSH_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("SEMRUSH_API_KEY"); key != "" {
		config.Semrush.APIKey = key
	}
	if url := os.Getenv("SEMRUSH_BASE_URL"); url != "" {
		config.Semrush.BaseURL = url
	}
	if timeout := os.Getenv("SEMRUSH_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil && t > 0 {
			config.Semrush.TimeoutSeconds = t
		}
	}
	if port := os.Getenv("SEMRUSH_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("SEMRUSH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that configuration values the pipeline depends on are sane.
// The API key is deliberately not checked here: a missing credential is
// reported per invocation by the request builder, so the server can still
// start and list its tools.
func (c *Config) Validate() error {
	if c.Semrush.BaseURL == "" {
		return fmt.Errorf("semrush base_url must not be empty")
	}
	if c.Semrush.TimeoutSeconds <= 0 {
		return fmt.Errorf("semrush timeout_seconds must be positive, got %d", c.Semrush.TimeoutSeconds)
	}
	return nil
}
