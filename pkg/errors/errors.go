package errors

import "fmt"

// HTTPError is an error that carries an HTTP status code and a
// client-facing message. Delivery layers map domain sentinel errors to
// HTTPError values; the response package knows how to render them.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
