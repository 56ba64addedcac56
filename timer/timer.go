// Package timer operates the live session timer: a two-state machine over
// the session store, and a terminal view with a once-per-second readout
package timer

import (
	"log/slog"
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
	"github.com/Tsuyoshi84/time-tracker/store"
)

// Opts carries the presentation and notification settings the timer needs.
type Opts struct {
	SessionCmd     string
	Notify         bool
	TwentyFourHour bool
}

// Engine is the state machine for the single live session. It is either
// idle or running; the store's active session row remains the source of
// truth, and the in-memory state is rehydrated from it.
type Engine struct {
	db    store.DB
	opts  Opts
	state models.TimerState
}

func New(db store.DB, opts Opts) *Engine {
	return &Engine{db: db, opts: opts}
}

// Rehydrate probes the store for an active session and seeds the engine
// from it, recovering a timer left running by a previous process.
func (e *Engine) Rehydrate() error {
	sess, err := e.db.GetActiveSession()
	if err != nil {
		return err
	}

	if sess == nil {
		e.state = models.TimerState{}
		return nil
	}

	e.state = models.TimerState{
		Running:   true,
		Current:   sess,
		StartTime: sess.StartTime,
	}

	return nil
}

// Running reports whether a session is live.
func (e *Engine) Running() bool {
	return e.state.Running
}

// Current returns the live session, or nil when idle.
func (e *Engine) Current() *models.Session {
	return e.state.Current
}

// Elapsed returns the live session's elapsed time, or zero when idle.
func (e *Engine) Elapsed() time.Duration {
	if !e.state.Running {
		return 0
	}

	return timeutil.Between(e.state.StartTime, time.Now())
}

// Start begins a new live session. Starting while already running is a
// no-op so that repeated start events can never produce a second active
// session.
func (e *Engine) Start() error {
	if e.state.Running {
		return nil
	}

	now := time.Now()

	sess := &models.Session{
		StartTime: now,
		Active:    true,
	}

	if err := e.db.SaveSession(sess); err != nil {
		return err
	}

	e.state = models.TimerState{
		Running:   true,
		Current:   sess,
		StartTime: now,
	}

	slog.Info("timer started", slog.Time("start_time", now))
	e.fireTransition("Timer started", "Now tracking time")

	return nil
}

// Pause ends the live session, persisting its end time and clamped
// duration. Pausing while idle is a no-op.
func (e *Engine) Pause() error {
	if !e.state.Running {
		return nil
	}

	now := time.Now()
	duration := timeutil.Between(e.state.StartTime, now)

	_, err := e.db.UpdateSession(e.state.Current.ID, func(s *models.Session) {
		s.EndTime = now
		s.Duration = duration
		s.Active = false
	})
	if err != nil {
		return err
	}

	e.state = models.TimerState{}

	slog.Info("timer paused",
		slog.Time("end_time", now),
		slog.Duration("duration", duration),
	)
	e.fireTransition("Timer paused", "Tracked "+timeutil.FormatDuration(duration))

	return nil
}

// Toggle dispatches to Pause or Start depending on the current state, never
// both.
func (e *Engine) Toggle() error {
	if e.state.Running {
		return e.Pause()
	}

	return e.Start()
}
