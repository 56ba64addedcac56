package session

import "github.com/Tsuyoshi84/time-tracker/internal/apperr"

var (
	// ErrSessionOverlap indicates a time-range write that would intersect an
	// existing completed session on the same day.
	ErrSessionOverlap = &apperr.Error{
		Message: "this time range overlaps with %d existing session(s)",
	}

	errMissingEndTime = &apperr.Error{
		Message: "a completed session requires an end time",
	}
)
