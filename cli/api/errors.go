package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedPayload is returned when the feed body is not a JSON array
var ErrMalformedPayload = errors.New("malformed members payload")

// StatusError reports a non-2xx response from the members feed
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("members feed returned %d %s", e.Code, http.StatusText(e.Code))
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	default:
		return code >= http.StatusInternalServerError
	}
}
