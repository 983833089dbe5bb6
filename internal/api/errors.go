package api

import (
	"errors"
	"fmt"
)

// ErrPageLimitExceeded is returned when a paginated listing still has a
// continuation token after the configured maximum number of pages.
var ErrPageLimitExceeded = errors.New("pagination limit exceeded")

// UpstreamError reports a non-success response from the X API.
type UpstreamError struct {
	Op         string // "get user", "get affiliates"
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Body)
}

// IsUpstreamError reports whether err wraps an *UpstreamError and returns it.
func IsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
