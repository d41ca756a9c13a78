package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned when the generation service answers with a
// non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("LLM returned status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("LLM returned status %d", e.Code)
}

// ParseError is returned when the model's text is not the JSON shape that
// was asked for.
type ParseError struct {
	Reason  string
	Raw     string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("unparseable LLM output: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("unparseable LLM output: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// IsOverloaded reports whether err is the service's "temporarily
// overloaded" signal, the only condition worth retrying.
func IsOverloaded(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusServiceUnavailable
	}
	// SDK clients only surface the status inside the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "503") || strings.Contains(msg, "overloaded")
}
