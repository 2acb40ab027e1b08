package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kuromu/mal-client/pkg/params"
)

// Re-exported sentinels so callers only need this package for error checks.
var (
	// ErrInvalidConfiguration marks structurally invalid session settings.
	ErrInvalidConfiguration = params.ErrInvalidConfiguration

	// ErrInvalidArgument marks invalid per-call parameters.
	ErrInvalidArgument = params.ErrInvalidArgument

	// ErrNoMorePages is returned by paging helpers when the current page has
	// no link in the requested direction.
	ErrNoMorePages = errors.New("no more pages")
)

// APIError is a non-2xx response from the API, carried through unchanged.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass

	// Message and Reason are the "message" and "error" fields of the API's
	// error body, when it sent one.
	Message string
	Reason  string

	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("api %s error (status %d): %s: %s",
			e.ErrorClass, e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("api %s error (status %d)", e.ErrorClass, e.StatusCode)
}

// newAPIError builds an APIError from a response body. The API reports
// errors as {"message": "...", "error": "..."}; anything else is kept raw.
func newAPIError(statusCode int, class ErrorClass, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		ErrorClass: class,
		Body:       body,
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
		apiErr.Reason = parsed.Error
	}

	return apiErr
}
