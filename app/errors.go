package app

import "github.com/Tsuyoshi84/time-tracker/internal/apperr"

var (
	errInvalidDate = &apperr.Error{
		Message: "unable to interpret %q as a date",
	}

	errInvalidSessionNumber = &apperr.Error{
		Message: "%q is not a session number from the list for this date",
	}

	errNothingToEdit = &apperr.Error{
		Message: "provide --start or --end to change the session",
	}

	errIncompleteRange = &apperr.Error{
		Message: "provide both --start and --end, or neither for the default block",
	}
)
