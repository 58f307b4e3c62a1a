package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMCPTool_AdvertisesSchema(t *testing.T) {
	d := mustLookup(t, "keyword_difficulty")
	tool := MCPTool(d)

	if tool.Name != "keyword_difficulty" {
		t.Errorf("Expected tool name keyword_difficulty, got %q", tool.Name)
	}
	if tool.Description == "" {
		t.Error("Expected non-empty description")
	}

	// Inspect the advertised JSON schema rather than mcp-go internals.
	raw, err := json.Marshal(tool)
	if err != nil {
		t.Fatalf("Failed to marshal tool: %v", err)
	}
	schema := string(raw)
	for _, want := range []string{`"phrase"`, `"database"`, `"required"`, `"enum"`} {
		if !strings.Contains(schema, want) {
			t.Errorf("Tool schema missing %s: %s", want, schema)
		}
	}
}

func TestMCPTool_DefaultMentionedInDescription(t *testing.T) {
	d := mustLookup(t, "backlinks")
	tool := MCPTool(d)

	raw, err := json.Marshal(tool)
	if err != nil {
		t.Fatalf("Failed to marshal tool: %v", err)
	}
	if !strings.Contains(string(raw), "Defaults to 'root_domain'") {
		t.Error("Expected target_type default surfaced in its description")
	}
}

func TestMCPTool_EveryCatalogToolConverts(t *testing.T) {
	for _, d := range Descriptors() {
		tool := MCPTool(d)
		if tool.Name != d.Name {
			t.Errorf("Tool name mismatch: %q vs %q", tool.Name, d.Name)
		}
		if _, err := json.Marshal(tool); err != nil {
			t.Errorf("Tool %q failed to marshal: %v", d.Name, err)
		}
	}
}
