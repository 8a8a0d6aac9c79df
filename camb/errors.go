package camb

import (
	"errors"
	"fmt"
)

// APIError is any provider response the client could not use: an HTTP error
// status, or a 2xx body that failed to decode as the expected envelope. The
// raw body is preserved because some endpoints put the real payload there;
// the translation endpoint in particular answers 200 with the translated
// text as plain text, which surfaces here rather than as a decoded result.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("camb api: status %d: %s", e.StatusCode, body)
}

// IsStatus reports whether err carries an *APIError with the given status.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
