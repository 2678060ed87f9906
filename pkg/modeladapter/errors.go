package modeladapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitError is returned when the API responds with HTTP 429 (Too Many Requests).
// It carries an optional RetryAfter duration parsed from the Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %s", e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("rate limited: %s", e.Body)
}

// ParseRetryAfter parses the Retry-After header value as either seconds (integer)
// or an HTTP-date (RFC 7231). Returns zero if unparseable or if the date is in the past.
func ParseRetryAfter(val string) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// APIError is a non-2xx reply other than 429. The structured fields are
// filled from the OpenAI error envelope when the body carries one.
type APIError struct {
	StatusCode int
	Type       string // e.g. "invalid_request_error".
	Code       string // e.g. "unsupported_parameter".
	Param      string // Offending request field, when the service names one.
	Message    string
	Body       string // Raw response body.
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, msg)
}

// IsBadRequest reports whether the service rejected the request at validation time.
func (e *APIError) IsBadRequest() bool { return e.StatusCode == http.StatusBadRequest }

// IsAuthentication reports whether the credential was rejected.
func (e *APIError) IsAuthentication() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Param   *string         `json:"param"`
	Code    json.RawMessage `json:"code"`
}

// NewAPIError builds an APIError from a status code and raw body.
// Bodies that are not an error envelope are kept verbatim in Body only.
func NewAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: string(body)}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Error) == 0 {
		return e
	}

	var detail errorDetail
	if err := json.Unmarshal(env.Error, &detail); err != nil {
		// Some OpenAI-compatible servers send {"error": "text"}.
		var text string
		if json.Unmarshal(env.Error, &text) == nil {
			e.Message = text
		}
		return e
	}

	e.Message = detail.Message
	e.Type = detail.Type
	if detail.Param != nil {
		e.Param = *detail.Param
	}
	e.Code = rawString(detail.Code)

	return e
}

// rawString renders a JSON scalar that may be a string, a number or null.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	return string(raw)
}
