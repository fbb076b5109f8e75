package providers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/poiesic/prospector/ratelimit"
)

var (
	// ErrMissingCredentials is returned by constructors when an API key is empty.
	ErrMissingCredentials = errors.New("missing API credentials")
)

// StatusError is a non-2xx response from a provider.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s http %d: %s", e.Service, e.Code, e.Body)
}

// Unwrap exposes ratelimit.ErrRateLimited for 429 responses so the executor
// retries them.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusTooManyRequests {
		return ratelimit.ErrRateLimited
	}
	return nil
}

// IsNotFound reports whether err is a 404 from a provider.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
