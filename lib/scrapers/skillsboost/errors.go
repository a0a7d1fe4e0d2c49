package skillsboost

import (
	"errors"
	"fmt"
)

// the caller-facing failure taxonomy. ErrTimeout and ErrNetwork are
// transient and may be retried, everything else is terminal for the
// request.
var (
	ErrInvalidURL     = errors.New("invalid profile url format")
	ErrPrivateProfile = errors.New("profile is private")
	ErrTimeout        = errors.New("request timed out")
	ErrNetwork        = errors.New("network error")
	ErrEmptyResponse  = errors.New("empty response received")
)

// StatusError reports a non-2xx response from the platform. These
// are platform-side and are not retried automatically.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("http %d: failed to fetch profile", e.Code)
}
