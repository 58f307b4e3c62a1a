package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
	"github.com/searchgrid/semrush-mcp/internal/common"
	"github.com/searchgrid/semrush-mcp/internal/config"
	mcpserv "github.com/searchgrid/semrush-mcp/internal/mcp"
	"github.com/searchgrid/semrush-mcp/internal/semrush"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "semrush-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	registry, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog error: %v\n", err)
		os.Exit(1)
	}

	client := semrush.NewClient(cfg.Semrush, logger)
	mcpServer, toolCount := mcpserv.NewServer(cfg.Server.Name, registry, client, logger)

	if cfg.Semrush.APIKey == "" {
		logger.Warn().Msg("no Semrush API key configured, every tool call will fail until SEMRUSH_API_KEY is set")
	}

	logger.Info().
		Int("tools", toolCount).
		Str("base_url", cfg.Semrush.BaseURL).
		Str("version", common.GetFullVersion()).
		Msg("Semrush MCP server initialized")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting MCP Streamable HTTP")

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
