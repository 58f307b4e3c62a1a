package semrush

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
	"github.com/searchgrid/semrush-mcp/internal/common"
	"github.com/searchgrid/semrush-mcp/internal/config"
)

func testClient(t *testing.T, baseURL, apiKey string) *Client {
	t.Helper()
	return NewClient(config.SemrushConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	}, common.NewSilentLogger())
}

func lookupTool(t *testing.T, name string) catalog.Descriptor {
	t.Helper()
	reg, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() returned error: %v", err)
	}
	d, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("tool %q not in catalog", name)
	}
	return d
}

func TestBuildRequest_QueryEncoding(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "secret")
	d := lookupTool(t, "keyword_difficulty")

	req, err := client.BuildRequest(d, map[string]any{
		"database": "us",
		"phrase":   "running shoes",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Errorf("Expected GET, got %s", req.Method)
	}
	for _, want := range []string{"database=us", "phrase=running+shoes", "key=secret", "type=phrase_kdi"} {
		if !strings.Contains(req.URL, want) {
			t.Errorf("Expected URL to contain %q, got %s", want, req.URL)
		}
	}
	if req.Body != nil {
		t.Error("GET request should carry no body")
	}
}

func TestBuildRequest_CredentialExactlyOnce(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "secret")
	d := lookupTool(t, "domain_overview")

	req, err := client.BuildRequest(d, map[string]any{"domain": "example.com"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := strings.Count(req.URL, "key="); n != 1 {
		t.Errorf("Expected credential exactly once, found %d occurrences in %s", n, req.URL)
	}
}

func TestBuildRequest_Deterministic(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "secret")
	d := lookupTool(t, "domain_organic_keywords")
	args := map[string]any{
		"domain":         "example.com",
		"database":       "us",
		"display_limit":  float64(25),
		"export_columns": []string{"Ph", "Po", "Nq"},
	}

	first, err := client.BuildRequest(d, args)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := client.BuildRequest(d, args)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.URL != second.URL || first.Method != second.Method || string(first.Body) != string(second.Body) {
		t.Errorf("Expected byte-identical requests, got\n%s\n%s", first.URL, second.URL)
	}
}

func TestBuildRequest_MissingCredential(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "")
	d := lookupTool(t, "keyword_overview")

	_, err := client.BuildRequest(d, map[string]any{"phrase": "seo", "database": "us"})
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Expected ErrMissingCredential, got %v", err)
	}
}

func TestBuildRequest_DefaultApplied(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "secret")
	d := lookupTool(t, "backlinks")

	req, err := client.BuildRequest(d, map[string]any{"target": "example.com"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(req.URL, "target_type=root_domain") {
		t.Errorf("Expected default target_type in URL, got %s", req.URL)
	}

	req, err = client.BuildRequest(d, map[string]any{"target": "example.com/page", "target_type": "url"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(req.URL, "target_type=url") {
		t.Errorf("Expected explicit target_type to win, got %s", req.URL)
	}
}

func TestBuildRequest_TokenSerialization(t *testing.T) {
	client := testClient(t, "https://api.semrush.com", "secret")
	d := lookupTool(t, "domain_overview_history")

	req, err := client.BuildRequest(d, map[string]any{
		"domain":         "example.com",
		"database":       "us",
		"display_limit":  float64(12),
		"display_daily":  true,
		"export_columns": []string{"Rk", "Or", "Dt"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{
		"display_limit=12",          // whole numbers without fractional part
		"display_daily=1",           // booleans as 1/0
		"export_columns=Rk%2COr%2CDt", // arrays joined with commas
	} {
		if !strings.Contains(req.URL, want) {
			t.Errorf("Expected URL to contain %q, got %s", want, req.URL)
		}
	}
}

func TestSend_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("Expected key=secret, got %q", r.URL.Query().Get("key"))
		}
		w.Write([]byte("Keyword;Keyword Difficulty\nrunning shoes;85.5\n"))
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL, "secret")
	d := lookupTool(t, "keyword_difficulty")
	req, err := client.BuildRequest(d, map[string]any{"phrase": "running shoes", "database": "us"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	status, body, err := client.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Expected 200, got %d", status)
	}
	if !strings.Contains(string(body), "85.5") {
		t.Errorf("Expected body passthrough, got %s", body)
	}
}

func TestSend_TransportFailure(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:1", "secret")
	d := lookupTool(t, "keyword_overview")
	req, err := client.BuildRequest(d, map[string]any{"phrase": "seo", "database": "us"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, _, err = client.Send(context.Background(), req)
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UnavailableError, got %v", err)
	}
}

func TestSend_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer mockServer.Close()
	defer close(blocked)

	client := testClient(t, mockServer.URL, "secret")
	d := lookupTool(t, "keyword_overview")
	req, err := client.BuildRequest(d, map[string]any{"phrase": "seo", "database": "us"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = client.Send(ctx, req)
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UnavailableError on cancellation, got %v", err)
	}
}

func TestCall_EndToEnd(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "phrase_kdi" {
			t.Errorf("Expected type=phrase_kdi, got %q", got)
		}
		w.Write([]byte("Keyword;Keyword Difficulty\nrunning shoes;85.5\n"))
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL, "secret")
	d := lookupTool(t, "keyword_difficulty")

	content, err := client.Call(context.Background(), d, map[string]any{
		"phrase":   "running shoes",
		"database": "us",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var row map[string]any
	if err := json.Unmarshal([]byte(content), &row); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	if row["keyword_difficulty"] != 85.5 {
		t.Errorf("Expected keyword_difficulty=85.5, got %v", row["keyword_difficulty"])
	}
}

func TestRedactKey(t *testing.T) {
	redacted := redactKey("https://api.semrush.com/?database=us&key=secret&type=phrase_this")
	if strings.Contains(redacted, "secret") {
		t.Errorf("Expected key redacted, got %s", redacted)
	}
	if !strings.Contains(redacted, "key=REDACTED") {
		t.Errorf("Expected REDACTED placeholder, got %s", redacted)
	}
}
