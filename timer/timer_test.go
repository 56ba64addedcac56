package timer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/testutil"
	"github.com/Tsuyoshi84/time-tracker/timer"
)

func newEngine(t *testing.T) *timer.Engine {
	t.Helper()

	return timer.New(testutil.NewStore(t), timer.Opts{})
}

func TestStartPause(t *testing.T) {
	db := testutil.NewStore(t)
	e := timer.New(db, timer.Opts{})

	if e.Running() {
		t.Fatal("expected a fresh engine to be idle")
	}

	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !e.Running() {
		t.Fatal("expected engine to be running after start")
	}

	sess, err := db.GetActiveSession()
	if err != nil {
		t.Fatalf("get active session: %v", err)
	}

	if sess == nil {
		t.Fatal("expected an active session in the store")
	}

	if sess.ID != e.Current().ID {
		t.Errorf("active session id = %d, engine holds %d", sess.ID, e.Current().ID)
	}

	if err := e.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if e.Running() {
		t.Fatal("expected engine to be idle after pause")
	}

	sess, err = db.GetActiveSession()
	if err != nil {
		t.Fatalf("get active session: %v", err)
	}

	if sess != nil {
		t.Errorf("expected no active session after pause, got %d", sess.ID)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	db := testutil.NewStore(t)
	e := timer.New(db, timer.Opts{})

	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	id := e.Current().ID

	if err := e.Start(); err != nil {
		t.Fatalf("second start: %v", err)
	}

	if e.Current().ID != id {
		t.Errorf("second start replaced the live session: %d != %d", e.Current().ID, id)
	}

	sessions, err := db.GetSessionsByDate(time.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("get sessions: %v", err)
	}

	if len(sessions) != 1 {
		t.Errorf("expected 1 session in the store, got %d", len(sessions))
	}
}

func TestPauseWhileIdleIsNoop(t *testing.T) {
	e := newEngine(t)

	if err := e.Pause(); err != nil {
		t.Fatalf("pause while idle: %v", err)
	}

	if e.Running() {
		t.Fatal("expected engine to stay idle")
	}
}

func TestToggleAlternates(t *testing.T) {
	db := testutil.NewStore(t)
	e := timer.New(db, timer.Opts{})

	for i := range 4 {
		if err := e.Toggle(); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}

		wantRunning := i%2 == 0
		if e.Running() != wantRunning {
			t.Fatalf("after toggle %d: running = %v, want %v", i, e.Running(), wantRunning)
		}

		sess, err := db.GetActiveSession()
		if err != nil {
			t.Fatalf("get active session: %v", err)
		}

		if wantRunning && sess == nil {
			t.Fatal("expected an active session while running")
		}

		if !wantRunning && sess != nil {
			t.Fatalf("expected no active session while idle, got %d", sess.ID)
		}
	}
}

func TestPausePersistsDuration(t *testing.T) {
	db := testutil.NewStore(t)
	e := timer.New(db, timer.Opts{})

	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	id := e.Current().ID

	if err := e.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}

	sessions, err := db.GetSessionsByDate(time.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("get sessions: %v", err)
	}

	var found bool

	for _, sess := range sessions {
		if sess.ID != id {
			continue
		}

		found = true

		if sess.Active {
			t.Error("expected the paused session to be completed")
		}

		if sess.EndTime.Before(sess.StartTime) {
			t.Error("expected end time at or after start time")
		}

		if sess.Duration < 0 {
			t.Errorf("expected a non-negative duration, got %v", sess.Duration)
		}
	}

	if !found {
		t.Fatalf("session %d not found for today", id)
	}
}

func TestRehydrate(t *testing.T) {
	db := testutil.NewStore(t)

	e := timer.New(db, timer.Opts{})
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	id := e.Current().ID

	// A second engine over the same store stands in for a new process.
	e2 := timer.New(db, timer.Opts{})
	if err := e2.Rehydrate(); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	if !e2.Running() {
		t.Fatal("expected the rehydrated engine to be running")
	}

	if e2.Current().ID != id {
		t.Errorf("rehydrated session id = %d, want %d", e2.Current().ID, id)
	}

	if err := e2.Pause(); err != nil {
		t.Fatalf("pause after rehydrate: %v", err)
	}

	sess, err := db.GetActiveSession()
	if err != nil {
		t.Fatalf("get active session: %v", err)
	}

	if sess != nil {
		t.Errorf("expected no active session after pause, got %d", sess.ID)
	}
}

func TestRehydrateIdle(t *testing.T) {
	e := newEngine(t)

	if err := e.Rehydrate(); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	if e.Running() {
		t.Fatal("expected the engine to be idle with an empty store")
	}

	if e.Elapsed() != 0 {
		t.Errorf("expected zero elapsed while idle, got %v", e.Elapsed())
	}
}

func TestSessionCmdRunsBeforePauseReturns(t *testing.T) {
	db := testutil.NewStore(t)

	marker := filepath.Join(t.TempDir(), "hook-ran")

	e := timer.New(db, timer.Opts{
		SessionCmd: fmt.Sprintf("touch %q", marker),
	})

	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := e.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}

	// the hook is synchronous, so the marker exists as soon as Pause
	// returns
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("expected the session_cmd hook to have run: %v", err)
	}
}
