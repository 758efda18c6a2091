package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier used to correlate log lines of
// a single request across the client and the server. It falls back to a
// random UUID if the clock-based variant cannot be produced.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
