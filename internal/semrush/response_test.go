package semrush

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
)

func delimitedDescriptor() catalog.Descriptor {
	return catalog.Descriptor{
		Name:        "report",
		Description: "a report",
		Method:      "GET",
		Path:        "/",
		Format:      catalog.FormatDelimited,
	}
}

func jsonDescriptor() catalog.Descriptor {
	d := delimitedDescriptor()
	d.Format = catalog.FormatJSON
	return d
}

func TestMapResponse_SingleRowObject(t *testing.T) {
	body := []byte("Keyword;Keyword Difficulty\nrunning shoes;85.5\n")
	content, err := MapResponse(delimitedDescriptor(), http.StatusOK, body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var row map[string]any
	if err := json.Unmarshal([]byte(content), &row); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	if row["keyword"] != "running shoes" {
		t.Errorf("Expected keyword field, got %v", row)
	}
	if row["keyword_difficulty"] != 85.5 {
		t.Errorf("Expected keyword_difficulty=85.5, got %v", row["keyword_difficulty"])
	}
}

func TestMapResponse_MultiRowArray(t *testing.T) {
	body := []byte("Domain;Rank;Organic Keywords\nexample.com;42;1500\nexample.org;97;310\n")
	content, err := MapResponse(delimitedDescriptor(), http.StatusOK, body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(content), &rows); err != nil {
		t.Fatalf("Result is not a JSON array: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["domain"] != "example.com" {
		t.Errorf("Expected domain preserved, got %v", rows[0])
	}
	if rows[1]["organic_keywords"] != float64(310) {
		t.Errorf("Expected numeric coercion, got %v (%T)", rows[1]["organic_keywords"], rows[1]["organic_keywords"])
	}
}

func TestMapResponse_HeaderOnlyEmptyArray(t *testing.T) {
	body := []byte("Domain;Rank\n")
	content, err := MapResponse(delimitedDescriptor(), http.StatusOK, body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(content), &rows); err != nil {
		t.Fatalf("Result is not a JSON array: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected empty array, got %v", rows)
	}
}

func TestMapResponse_Upstream4xx(t *testing.T) {
	_, err := MapResponse(delimitedDescriptor(), http.StatusTooManyRequests, []byte("quota exceeded"))
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Expected RejectedError, got %v", err)
	}
	if rejected.Status != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rejected.Status)
	}
	if rejected.Message != "quota exceeded" {
		t.Errorf("Expected upstream message carried, got %q", rejected.Message)
	}
}

func TestMapResponse_Upstream5xx(t *testing.T) {
	_, err := MapResponse(delimitedDescriptor(), http.StatusBadGateway, []byte("bad gateway"))
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UnavailableError, got %v", err)
	}
	if unavailable.Status != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", unavailable.Status)
	}
}

func TestMapResponse_InBandError(t *testing.T) {
	body := []byte("ERROR 50 :: NOTHING FOUND")
	_, err := MapResponse(delimitedDescriptor(), http.StatusOK, body)
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("Expected RejectedError, got %v", err)
	}
	if rejected.Code != 50 {
		t.Errorf("Expected in-band code 50, got %d", rejected.Code)
	}
	if rejected.Message != "NOTHING FOUND" {
		t.Errorf("Expected upstream message, got %q", rejected.Message)
	}
}

func TestMapResponse_EmptyBodyMalformed(t *testing.T) {
	_, err := MapResponse(delimitedDescriptor(), http.StatusOK, []byte("  \n"))
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedResponseError, got %v", err)
	}
}

func TestMapResponse_RaggedRowsMalformed(t *testing.T) {
	body := []byte("Domain;Rank\nexample.com;42;extra\n")
	_, err := MapResponse(delimitedDescriptor(), http.StatusOK, body)
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedResponseError, got %v", err)
	}
}

func TestMapResponse_JSONRoundTrip(t *testing.T) {
	body := []byte(`{"target":"example.com","ascore":61,"total":120345,"domains_num":981}`)
	content, err := MapResponse(jsonDescriptor(), http.StatusOK, body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	// Every upstream field survives the mapping.
	for field, want := range map[string]any{
		"target":      "example.com",
		"ascore":      float64(61),
		"total":       float64(120345),
		"domains_num": float64(981),
	} {
		if payload[field] != want {
			t.Errorf("Expected %s=%v, got %v", field, want, payload[field])
		}
	}
}

func TestMapResponse_InvalidJSONMalformed(t *testing.T) {
	_, err := MapResponse(jsonDescriptor(), http.StatusOK, []byte("{not json"))
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedResponseError, got %v", err)
	}
}

func TestSnakeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Keyword Difficulty", "keyword_difficulty"},
		{"Db", "db"},
		{"Organic Keywords", "organic_keywords"},
		{"source_url", "source_url"},
		{"Traffic (%)", "traffic"},
		{"  Rank  ", "rank"},
	}
	for _, tt := range tests {
		if got := snakeKey(tt.in); got != tt.want {
			t.Errorf("snakeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
