package backend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

var (
	// ErrNotFound: the backend answered 404 for the requested record.
	ErrNotFound = errors.New("backend: not found")

	// ErrUnavailable: the circuit is open or the backend is unreachable.
	ErrUnavailable = errors.New("backend: unavailable")

	// ErrUnexpectedShape: the response matched none of the documented
	// envelope shapes. We fail hard instead of degrading to an empty list so
	// contract drift is caught early.
	ErrUnexpectedShape = errors.New("backend: unexpected response shape")
)

// APIError carries the backend's structured rejection payload. The
// backend sends either {"message": "..."} or an ASP.NET style
// {"errors": {"Field": ["msg", ...]}} map; both are preserved verbatim so the
// user sees the backend's own wording when there is one.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

func apiErrorFrom(status int, body []byte) *APIError {
	var probe struct {
		Message string              `json:"message"`
		Title   string              `json:"title"`
		Errors  map[string][]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &probe)

	msg := probe.Message
	if msg == "" {
		msg = probe.Title
	}
	return &APIError{Status: status, Message: msg, Fields: probe.Errors}
}

// UserMessage extracts the message to surface in a notification: the
// backend's own message when present, field errors flattened when not, and a
// generic fallback otherwise.
func UserMessage(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) {
		if ae.Message != "" {
			return ae.Message
		}
		if len(ae.Fields) > 0 {
			keys := make([]string, 0, len(ae.Fields))
			for k := range ae.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			var parts []string
			for _, k := range keys {
				parts = append(parts, strings.Join(ae.Fields[k], "; "))
			}
			return strings.Join(parts, " ")
		}
	}
	if errors.Is(err, ErrUnavailable) {
		return "The service is temporarily unavailable. Please try again shortly."
	}
	return fallback
}
