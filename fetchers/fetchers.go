package fetchers

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBaseURL  = errors.New("api base url is not configured")
	ErrMissingEndpoint = errors.New("daily rates endpoint is not configured")

	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")

	ErrDecode = errors.New("malformed daily rates payload")
)

func statusError(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}

	switch {
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	case code >= 400:
		return fmt.Errorf("%w: status %d", ErrClient, code)
	default:
		return fmt.Errorf("%w: status %d", ErrUnknown, code)
	}
}
