package semrush

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/searchgrid/semrush-mcp/internal/catalog"
)

// inBandError matches the "ERROR NN :: MESSAGE" bodies the Semrush analytics
// API returns with HTTP 200 for rejected requests (wrong key, nothing found,
// exceeded limits).
var inBandError = regexp.MustCompile(`^ERROR (\d+)\s*::\s*(.*)$`)

// MapResponse converts an upstream HTTP response into the tool-result content
// text: a JSON document with one object per report row. Upstream failures are
// returned as the matching taxonomy error, never as content.
func MapResponse(d catalog.Descriptor, status int, body []byte) (string, error) {
	switch {
	case status >= 500:
		return "", &UnavailableError{Status: status}
	case status >= 400:
		return "", &RejectedError{Status: status, Message: strings.TrimSpace(string(body))}
	}

	switch d.Format {
	case catalog.FormatJSON:
		return mapJSON(body)
	default:
		return mapDelimited(status, body)
	}
}

// mapDelimited parses the semicolon-separated tabular format into JSON rows
// keyed by snake-cased column headers. A single-row report renders as one
// object, multi-row reports as an array.
func mapDelimited(status int, body []byte) (string, error) {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", &MalformedResponseError{Err: fmt.Errorf("empty response body")}
	}

	if m := inBandError.FindStringSubmatch(text); m != nil {
		code, _ := strconv.Atoi(m[1])
		return "", &RejectedError{Status: status, Code: code, Message: strings.TrimSpace(m[2])}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		return "", &MalformedResponseError{Err: err}
	}
	if len(records) == 0 {
		return "", &MalformedResponseError{Err: fmt.Errorf("response has no header row")}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = snakeKey(h)
	}

	rows := make([]map[string]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]any, len(record))
		for i, cell := range record {
			row[header[i]] = coerceCell(cell)
		}
		rows = append(rows, row)
	}

	var payload any = rows
	if len(rows) == 1 {
		payload = rows[0]
	}
	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", &MalformedResponseError{Err: err}
	}
	return string(rendered), nil
}

// mapJSON normalizes a JSON response, preserving every field.
func mapJSON(body []byte) (string, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &MalformedResponseError{Err: err}
	}
	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", &MalformedResponseError{Err: err}
	}
	return string(rendered), nil
}

// snakeKey converts a column header to a snake_case JSON key,
// e.g. "Keyword Difficulty" -> "keyword_difficulty".
func snakeKey(header string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}

// coerceCell converts a numeric-looking cell to a JSON number, leaving
// everything else as a string.
func coerceCell(cell string) any {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// Only coerce values that round-trip, so leading zeros and
		// overflow-truncated digits are preserved as text.
		if strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	return s
}
