package recordsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the service answers with a non-2xx status code or
// with a body whose status discriminator is not "ok".
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the message from the response body, or the status text when
	// the body could not be parsed
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("records api: HTTP %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err to an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// parseErrorResponse turns an unsuccessful response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}

// checkStatus rejects a 2xx body whose status discriminator is not "ok".
func checkStatus(resp *http.Response, status, message string) error {
	if status == StatusOK {
		return nil
	}
	if message == "" {
		message = fmt.Sprintf("unexpected status %q", status)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
