package store

import "github.com/Tsuyoshi84/time-tracker/internal/apperr"

var (
	// ErrStoreUnavailable indicates that the session database could not be
	// opened or initialized.
	ErrStoreUnavailable = &apperr.Error{
		Message: "the session database could not be opened",
	}

	// ErrAlreadyOpen indicates that another process holds the database lock.
	ErrAlreadyOpen = &apperr.Error{
		Message: "is the tracker already running? Only one instance can access the database at a time",
	}

	// ErrSessionNotFound indicates an update referencing a missing session.
	ErrSessionNotFound = &apperr.Error{
		Message: "session %d does not exist",
	}
)
