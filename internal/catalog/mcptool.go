package catalog

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool converts a descriptor into an mcp.Tool with the matching input schema.
func MCPTool(d Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, p := range d.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(d.Name, opts...)
}

// paramOption maps a Param to the appropriate mcp-go tool option.
func paramOption(p Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if desc := paramDescription(p); desc != "" {
		opts = append(opts, mcp.Description(desc))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case TypeNumber:
		return mcp.WithNumber(p.Name, opts...)
	case TypeBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	case TypeArray:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		return mcp.WithString(p.Name, opts...)
	}
}

// paramDescription appends the default to the advertised description so
// clients see it without reading the upstream docs.
func paramDescription(p Param) string {
	if p.Default == "" {
		return p.Description
	}
	desc := strings.TrimSpace(p.Description)
	return fmt.Sprintf("%s Defaults to '%s'.", desc, p.Default)
}
