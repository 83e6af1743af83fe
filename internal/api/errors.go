package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the catalog API. Message carries the
// server's optional "message" body field when one was present.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// DisplayMessage picks the text shown to the user for a failed call:
// the server-provided message when there is one, otherwise the error's own
// text, otherwise the fallback.
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
