package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// -----------------------------------------------------------------------------
// ConnectionError
// -----------------------------------------------------------------------------

// ConnectionError reports a transport-level failure: DNS, connection refused,
// timeout, or a failed connectivity probe during client construction.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to reach n8n instance at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// -----------------------------------------------------------------------------
// APIError
// -----------------------------------------------------------------------------

// APIError reports a non-2xx response. Body carries the raw response so
// callers can diagnose without re-running the request; Message is a
// best-effort extraction of the server's error envelope.
type APIError struct {
	Status  int
	Body    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("n8n API error: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("n8n API error (status %d)", e.Status)
}

func newAPIError(resp *resty.Response) *APIError {
	return &APIError{
		Status:  resp.StatusCode(),
		Body:    resp.String(),
		Message: parseErrorMessage(resp.Body()),
	}
}

// parseErrorMessage pulls the human-readable message out of the server's
// error envelope, tolerating both {"message": ...} and {"error": ...} shapes.
func parseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	message := strings.TrimSpace(envelope.Message)
	if message == "" {
		message = strings.TrimSpace(envelope.Error)
	}
	return message
}
