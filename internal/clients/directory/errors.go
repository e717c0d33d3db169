package directory

import (
	"encoding/json"
	"fmt"
)

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("directory returned status %d: %s", e.StatusCode, e.Message())
}

// Message extracts the human-readable error the directory embeds in its
// error payloads, falling back to the raw body.
func (e *APIError) Message() string {
	var payload struct {
		Message          string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrorDescription != "" {
			return payload.ErrorDescription
		}
	}
	return e.Body
}

// IsAuthFailure reports whether the error is a credential problem rather
// than a connectivity or server failure.
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == 400 || e.StatusCode == 401 || e.StatusCode == 422
}
