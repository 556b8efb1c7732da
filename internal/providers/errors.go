package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayerNotFound signals that upstream returned no data for a player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidID is returned when a squad name or uid is empty.
	ErrInvalidID = errors.New("identifier required")
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// StatusError captures a non-success HTTP response from an upstream provider.
type StatusError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %s: unexpected status %d", e.Provider, e.Operation, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// IsNotFound reports whether err means the player has no data and can be skipped.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlayerNotFound)
}
