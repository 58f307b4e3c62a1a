package config

import "github.com/searchgrid/semrush-mcp/internal/common"

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Semrush-MCP",
			Port: "4280",
		},
		Semrush: SemrushConfig{
			BaseURL:        "https://api.semrush.com",
			TimeoutSeconds: 30,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/semrush-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
