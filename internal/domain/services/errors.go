package services

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the only error callers see when a session or a login is
// rejected. The cause is logged, never returned.
var ErrUnauthorized = errors.New("unauthorized")

// UpstreamError wraps a failure of an external provider (object store, mail relay).
type UpstreamError struct {
	Provider string
	Op       string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
