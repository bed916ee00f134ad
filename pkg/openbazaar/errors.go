package openbazaar

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is returned by every Client method. StatusCode is zero for transport
// failures; Body holds the daemon's response payload exactly as received.
type Error struct {
	Op         string
	StatusCode int
	Body       []byte
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("openbazaar: ")
	b.WriteString(e.Op)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	switch {
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	case e.Reason != "":
		b.WriteString(": ")
		b.WriteString(e.Reason)
	default:
		if snippet := bodySnippet(e.Body); snippet != "" {
			b.WriteString(": ")
			b.WriteString(snippet)
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// DecodeBody unmarshals the daemon's error payload into v.
func (e *Error) DecodeBody(v any) error {
	if len(e.Body) == 0 {
		return errors.New("error body is empty")
	}
	return json.Unmarshal(e.Body, v)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var obErr *Error
	if errors.As(err, &obErr) {
		return obErr.StatusCode
	}
	return 0
}

// IsConflict reports a 409 response, e.g. creating a profile that already exists.
func IsConflict(err error) bool { return StatusCode(err) == http.StatusConflict }

// IsNotFound reports a 404 response.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

func newStatusError(op string, status int, body []byte) *Error {
	var payload struct {
		Reason string `json:"reason"`
	}
	_ = json.Unmarshal(body, &payload)
	return &Error{
		Op:         op,
		StatusCode: status,
		Body:       body,
		Reason:     payload.Reason,
	}
}

func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
