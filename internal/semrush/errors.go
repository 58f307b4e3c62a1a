// Package semrush builds, sends, and maps requests against the Semrush
// Analytics API. It is a pass-through layer: no retries, no caching, no
// interpretation of report data.
package semrush

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when a request is built without an API key
// configured. Detected before any network call.
var ErrMissingCredential = errors.New("semrush api key is not configured (set SEMRUSH_API_KEY)")

// RejectedError reports an upstream rejection: an HTTP 4xx status, or an
// in-band "ERROR NN :: message" body Semrush returns with HTTP 200. Covers
// bad input, quota, and auth failures the upstream itself detects.
type RejectedError struct {
	Status  int    // HTTP status code
	Code    int    // in-band Semrush error code, 0 if none
	Message string // upstream message, may be empty
}

func (e *RejectedError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("upstream rejected request: error %d: %s", e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("upstream rejected request (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream rejected request (HTTP %d)", e.Status)
}

// UnavailableError reports an upstream 5xx, timeout, or transport failure.
// The caller may retry; this package never does.
type UnavailableError struct {
	Status int   // HTTP status code, 0 for transport failures
	Err    error // underlying transport error, nil for HTTP 5xx
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream unavailable: %v", e.Err)
	}
	return fmt.Sprintf("upstream unavailable (HTTP %d)", e.Status)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// MalformedResponseError reports a 2xx response whose body could not be
// parsed in the format the tool's descriptor declares. Distinct from
// UnavailableError so callers can tell "upstream is down" from "upstream
// replied but the response could not be understood".
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed upstream response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
