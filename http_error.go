package junction

import "net/http"

// An HTTPError couples an error message with the HTTP status code it should
// surface as. A [Handler] returns an *HTTPError when a failure has a specific
// status; any other error surfaces as 500 Internal Server Error.
type HTTPError struct {
	Code int
	Msg  string
}

// NewHTTPError constructs an *HTTPError from the status code and message.
//
// A code outside the range of valid HTTP statuses becomes 500.
// An empty msg becomes the standard text for the code.
func NewHTTPError(code int, msg string) *HTTPError {
	if code < 100 || code > 599 {
		code = http.StatusInternalServerError
	}

	if msg == "" {
		msg = http.StatusText(code)
	}

	return &HTTPError{Code: code, Msg: msg}
}

// Error returns the message carried by the HTTPError.
func (e *HTTPError) Error() string { return e.Msg }
