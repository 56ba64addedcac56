package store

import (
	"github.com/Tsuyoshi84/time-tracker/internal/models"
)

// DB is the narrow storage interface the rest of the program depends on.
// All methods may fail if the underlying database is unreachable.
type DB interface {
	// SaveSession persists a new session, assigning its identity and
	// bookkeeping timestamps. The caller's struct is filled in with the
	// store-assigned fields.
	SaveSession(sess *models.Session) error
	// UpdateSession applies fn to the stored session with the given id
	// inside a single transaction and persists the result. It fails with
	// ErrSessionNotFound if no such session exists.
	UpdateSession(id uint64, fn func(*models.Session)) (*models.Session, error)
	// DeleteSession removes a session. Deleting a missing id is a no-op.
	DeleteSession(id uint64) error
	// GetSessionsByDate returns all sessions recorded on the given
	// YYYY-MM-DD date, ordered by start time ascending.
	GetSessionsByDate(date string) ([]models.Session, error)
	// GetActiveSession returns the single running session, or nil if the
	// timer is idle.
	GetActiveSession() (*models.Session, error)
	// GetSessionsInRange returns all sessions whose date falls within the
	// inclusive [startDate, endDate] range, ordered by start time ascending.
	GetSessionsInRange(startDate, endDate string) ([]models.Session, error)
	// ClearSessions wipes every stored session.
	ClearSessions() error
	// Close ends the database connection
	Close() error
}
