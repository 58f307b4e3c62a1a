package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
	"github.com/searchgrid/semrush-mcp/internal/common"
	"github.com/searchgrid/semrush-mcp/internal/semrush"
)

// NewServer builds the MCP server with every catalog tool registered and
// returns it together with the tool count for startup logging.
func NewServer(name string, registry *catalog.Registry, client *semrush.Client, logger *common.Logger) (*server.MCPServer, int) {
	s := server.NewMCPServer(
		name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	dispatcher := NewDispatcher(registry, client, logger)
	count := dispatcher.Register(s)

	return s, count
}
