// Package mcp connects the MCP tool surface to the Semrush pipeline: it
// registers one tool per catalog descriptor and routes every call-tool
// request through validate -> build -> send -> map.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
	"github.com/searchgrid/semrush-mcp/internal/common"
	"github.com/searchgrid/semrush-mcp/internal/semrush"
)

// Dispatcher routes tool invocations to the Semrush client. Stateless per
// call; safe for concurrent invocations.
type Dispatcher struct {
	registry *catalog.Registry
	client   *semrush.Client
	logger   *common.Logger
}

// NewDispatcher creates a dispatcher over a registry and upstream client.
func NewDispatcher(registry *catalog.Registry, client *semrush.Client, logger *common.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		client:   client,
		logger:   logger,
	}
}

// Register adds every catalog tool to the MCP server, each wired to this
// dispatcher. Returns the number of tools registered.
func (d *Dispatcher) Register(s *server.MCPServer) int {
	for _, desc := range d.registry.All() {
		s.AddTool(catalog.MCPTool(desc), d.handlerFor(desc.Name))
	}
	return d.registry.Len()
}

// handlerFor returns the mcp-go handler for one named tool. All handlers
// funnel into Handle so the dispatch path is identical for every tool.
func (d *Dispatcher) handlerFor(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Handle(ctx, name, r.GetArguments()), nil
	}
}

// Handle resolves a tool by name, validates arguments against its schema,
// and runs the upstream call. Every failure is returned as an MCP error
// result; an invalid invocation never reaches the network.
func (d *Dispatcher) Handle(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	requestID := uuid.NewString()
	log := d.logger.WithCorrelationId(requestID)

	desc, ok := d.registry.Lookup(name)
	if !ok {
		log.Warn().Str("tool", name).Msg("unknown tool requested")
		return errorResult(errorText(&catalog.UnknownToolError{Name: name}))
	}

	normalized, err := desc.ValidateArguments(args)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("argument validation failed")
		return errorResult(errorText(err))
	}

	log.Debug().Str("tool", name).Int("args", len(normalized)).Msg("dispatching tool call")

	content, err := d.client.Call(ctx, desc, normalized)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool call failed")
		return errorResult(errorText(err))
	}

	return textResult(content)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// errorText renders a pipeline error with a stable machine-readable prefix
// so callers can distinguish local validation failures from upstream ones.
func errorText(err error) string {
	var (
		unknownTool *catalog.UnknownToolError
		invalidArg  *catalog.InvalidArgumentError
		rejected    *semrush.RejectedError
		unavailable *semrush.UnavailableError
		malformed   *semrush.MalformedResponseError
	)
	switch {
	case errors.As(err, &unknownTool):
		return fmt.Sprintf("unknown_tool: %v", err)
	case errors.As(err, &invalidArg):
		return fmt.Sprintf("invalid_argument: %v", err)
	case errors.Is(err, semrush.ErrMissingCredential):
		return fmt.Sprintf("missing_credential: %v", err)
	case errors.As(err, &rejected):
		return fmt.Sprintf("upstream_rejected: %v", err)
	case errors.As(err, &unavailable):
		return fmt.Sprintf("upstream_unavailable: %v", err)
	case errors.As(err, &malformed):
		return fmt.Sprintf("malformed_response: %v", err)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
