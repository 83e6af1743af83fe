package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayMessagePrefersServerMessage(t *testing.T) {
	err := &APIError{Status: 400, Message: "title is required"}
	assert.Equal(t, "title is required", DisplayMessage(err, "Failed to save book"))
}

func TestDisplayMessageUnwrapsAPIError(t *testing.T) {
	err := fmt.Errorf("saving: %w", &APIError{Status: 409, Message: "duplicate author"})
	assert.Equal(t, "duplicate author", DisplayMessage(err, "fallback"))
}

func TestDisplayMessageFallsBackToErrorText(t *testing.T) {
	assert.Equal(t, "connection refused", DisplayMessage(errors.New("connection refused"), "fallback"))

	// An APIError without a server message still has error text.
	err := &APIError{Status: 502}
	assert.Equal(t, "api: 502 Bad Gateway", DisplayMessage(err, "fallback"))
}

func TestDisplayMessageNilError(t *testing.T) {
	assert.Equal(t, "fallback", DisplayMessage(nil, "fallback"))
}

func TestAPIErrorText(t *testing.T) {
	withMsg := &APIError{Status: 404, Message: "book not found"}
	assert.Equal(t, "api: 404 Not Found: book not found", withMsg.Error())

	bare := &APIError{Status: 404}
	assert.Equal(t, "api: 404 Not Found", bare.Error())
}
