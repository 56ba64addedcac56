// Package session manages the lifecycle of tracked sessions: loading them by
// date, editing and deleting them, adding retroactive entries, and enforcing
// the overlap-free invariant
package session

import (
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/store"
)

// Manager coordinates session reads and writes for a single selected date.
// It keeps an in-memory copy of that date's session list; the store remains
// the source of truth and the list is re-fetched after every mutation.
type Manager struct {
	db           store.DB
	selectedDate string
	sessions     []models.Session
	onChange     []func()
	// ManualDuration is the default length of a manually added session.
	ManualDuration time.Duration
}

// NewManager returns a Manager whose selected date is today.
func NewManager(db store.DB) *Manager {
	return &Manager{
		db:             db,
		selectedDate:   timeutil.ToDateString(time.Now()),
		ManualDuration: time.Hour,
	}
}

// OnChange registers a callback invoked after every successful mutation so
// that derived views (weekly and monthly statistics) can re-query the store.
// Recomputation is pull-based; the callback carries no payload.
func (m *Manager) OnChange(fn func()) {
	m.onChange = append(m.onChange, fn)
}

func (m *Manager) notifyChanged() {
	for _, fn := range m.onChange {
		fn()
	}
}

// LoadForDate fetches and caches the session list for the given date and
// makes it the selected date.
func (m *Manager) LoadForDate(date string) error {
	sessions, err := m.db.GetSessionsByDate(date)
	if err != nil {
		return err
	}

	m.selectedDate = date
	m.sessions = sessions

	return nil
}

// SelectedDate returns the date whose sessions are currently loaded.
func (m *Manager) SelectedDate() string {
	return m.selectedDate
}

// Sessions returns the cached session list for the selected date.
func (m *Manager) Sessions() []models.Session {
	return m.sessions
}

func (m *Manager) reload() error {
	return m.LoadForDate(m.selectedDate)
}

// Updates describes a partial edit to a session's time range. Nil fields are
// left unchanged.
type Updates struct {
	StartTime *time.Time
	EndTime   *time.Time
}

// Update applies a partial edit to a session. When the edit changes the time
// range of a completed session, the overlap check runs first against the
// target dates, excluding the session being edited; on conflict the update
// is not applied. Setting an end time on a running session completes it.
func (m *Manager) Update(sess *models.Session, upd Updates) error {
	start := sess.StartTime
	end := sess.EndTime

	if upd.StartTime != nil {
		start = *upd.StartTime
	}

	if upd.EndTime != nil {
		end = *upd.EndTime
	}

	if (upd.StartTime != nil || upd.EndTime != nil) && !end.IsZero() {
		conflicts, err := m.Overlapping(start, end, sess.ID)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return ErrSessionOverlap.Fmt(len(conflicts))
		}
	}

	_, err := m.db.UpdateSession(sess.ID, func(s *models.Session) {
		if upd.StartTime != nil {
			s.StartTime = *upd.StartTime
		}

		if upd.EndTime != nil {
			s.EndTime = *upd.EndTime
		}

		// Giving a running session an end time completes it; an active
		// session never carries an end time or duration.
		if !s.EndTime.IsZero() {
			s.Active = false
			s.Duration = timeutil.Between(s.StartTime, s.EndTime)
		}
	})
	if err != nil {
		return err
	}

	if err := m.reload(); err != nil {
		return err
	}

	m.notifyChanged()

	return nil
}

// Delete removes a session and refreshes the current date's view.
func (m *Manager) Delete(sess *models.Session) error {
	if err := m.db.DeleteSession(sess.ID); err != nil {
		return err
	}

	if err := m.reload(); err != nil {
		return err
	}

	m.notifyChanged()

	return nil
}

// AddManual creates a retroactively completed session on the given date. The
// block ends now when the date is today, or at local noon otherwise, and
// defaults to ManualDuration in length. The overlap check applies as for any
// other time-range write.
func (m *Manager) AddManual(date string) (*models.Session, error) {
	day, err := timeutil.FromDateString(date)
	if err != nil {
		return nil, err
	}

	end := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())
	if date == timeutil.ToDateString(time.Now()) {
		end = time.Now()
	}

	start := end.Add(-m.ManualDuration)

	return m.AddCompleted(start, end)
}

// AddCompleted persists a completed session with the given bounds, subject
// to the overlap check.
func (m *Manager) AddCompleted(start, end time.Time) (*models.Session, error) {
	if end.IsZero() {
		return nil, errMissingEndTime
	}

	conflicts, err := m.Overlapping(start, end, 0)
	if err != nil {
		return nil, err
	}

	if len(conflicts) > 0 {
		return nil, ErrSessionOverlap.Fmt(len(conflicts))
	}

	sess := &models.Session{
		StartTime: start,
		EndTime:   end,
		Duration:  timeutil.Between(start, end),
	}

	if err := m.db.SaveSession(sess); err != nil {
		return nil, err
	}

	if err := m.reload(); err != nil {
		return nil, err
	}

	m.notifyChanged()

	return sess, nil
}
