package semrush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
	"github.com/searchgrid/semrush-mcp/internal/common"
	"github.com/searchgrid/semrush-mcp/internal/config"
)

// Client sends tool invocations to the Semrush API. Safe for concurrent use;
// the only shared state is the pooled http.Client and the immutable config.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client from Semrush config. The timeout bounds every
// upstream call; a call exceeding it is reported as UnavailableError.
func NewClient(cfg config.SemrushConfig, logger *common.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}
}

// Request is a fully built upstream HTTP request. Building is deterministic:
// identical (descriptor, arguments) pairs yield byte-identical requests.
type Request struct {
	Method string
	URL    string
	Body   []byte // JSON body for POST tools, nil otherwise
}

// BuildRequest converts a descriptor plus validated arguments into an
// upstream request. Path placeholders are substituted, remaining arguments
// become query parameters (or body fields for POST tools), and the API key is
// injected exactly once as the key query parameter.
func (c *Client) BuildRequest(d catalog.Descriptor, args map[string]any) (*Request, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	path := d.Path
	query := url.Values{}
	body := map[string]any{}

	query.Set("key", c.apiKey)
	for k, v := range d.Fixed {
		query.Set(k, v)
	}

	for _, p := range d.Params {
		val, present := args[p.Name]
		if !present {
			if p.Default != "" {
				query.Set(p.Name, p.Default)
			}
			continue
		}
		switch p.In {
		case catalog.InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(serialize(val)))
		case catalog.InQuery:
			if s := serialize(val); s != "" {
				query.Set(p.Name, s)
			}
		case catalog.InBody:
			body[p.Name] = val
		}
	}

	req := &Request{
		Method: strings.ToUpper(d.Method),
		URL:    c.baseURL + path + "?" + query.Encode(),
	}
	if req.Method == http.MethodPost && len(body) > 0 {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.Body = data
	}
	return req, nil
}

// serialize renders an argument value with the upstream token conventions:
// arrays joined with commas, booleans as 1/0, whole numbers without a
// fractional part.
func serialize(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Send executes a built request and returns the response status and body.
// Transport failures (timeout, connection reset, cancellation) are reported
// as UnavailableError; HTTP statuses are returned as-is for the mapper.
func (c *Client) Send(ctx context.Context, r *Request) (int, []byte, error) {
	var bodyReader io.Reader
	if r.Body != nil {
		bodyReader = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", r.Method).
		Str("url", redactKey(r.URL)).
		Msg("Semrush Request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("url", redactKey(r.URL)).Dur("duration", duration).Msg("Semrush Request Failed")
		return 0, nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &UnavailableError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("Semrush Response")

	return resp.StatusCode, body, nil
}

// Call runs the full per-invocation pipeline: build, send, map.
func (c *Client) Call(ctx context.Context, d catalog.Descriptor, args map[string]any) (string, error) {
	req, err := c.BuildRequest(d, args)
	if err != nil {
		return "", err
	}
	status, body, err := c.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return MapResponse(d, status, body)
}

// redactKey masks the API key in a URL for logging.
func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
