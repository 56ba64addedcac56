package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/testutil"
	"github.com/Tsuyoshi84/time-tracker/session"
)

func at(t *testing.T, date string, hour, min int) time.Time {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.Local)
}

func TestOverlapping_HalfOpenBoundaries(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	// existing completed session [10:00, 11:00)
	if _, err := m.AddCompleted(at(t, "2024-01-15", 10, 0), at(t, "2024-01-15", 11, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name       string
		start, end time.Time
		conflicts  int
	}{
		{"contained", at(t, "2024-01-15", 10, 30), at(t, "2024-01-15", 10, 45), 1},
		{"touching end boundary", at(t, "2024-01-15", 11, 0), at(t, "2024-01-15", 12, 0), 0},
		{"touching start boundary", at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0), 0},
		{"straddling start", at(t, "2024-01-15", 9, 30), at(t, "2024-01-15", 10, 30), 1},
		{"straddling end", at(t, "2024-01-15", 10, 45), at(t, "2024-01-15", 11, 30), 1},
		{"covering", at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 12, 0), 1},
		{"different day", at(t, "2024-01-16", 10, 0), at(t, "2024-01-16", 11, 0), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Overlapping(tc.start, tc.end, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != tc.conflicts {
				t.Errorf("expected %d conflict(s), got %d", tc.conflicts, len(got))
			}
		})
	}
}

func TestOverlapping_IgnoresActiveAndExcluded(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	saved, err := m.AddCompleted(at(t, "2024-01-15", 10, 0), at(t, "2024-01-15", 11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The session being edited is left out of its own check.
	got, err := m.Overlapping(at(t, "2024-01-15", 10, 15), at(t, "2024-01-15", 10, 45), saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("expected the edited session to be excluded, got %d conflicts", len(got))
	}
}

func TestOverlapping_ChecksBothPartitionsAcrossMidnight(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	// existing session early on the 16th
	if _, err := m.AddCompleted(at(t, "2024-01-16", 0, 30), at(t, "2024-01-16", 1, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// candidate starting on the 15th and ending on the 16th
	got, err := m.Overlapping(at(t, "2024-01-15", 23, 0), at(t, "2024-01-16", 1, 0), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Errorf("expected conflict on the end date partition, got %d", len(got))
	}
}

func TestAddCompleted_RejectsOverlap(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.AddCompleted(at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := m.AddCompleted(at(t, "2024-01-15", 9, 30), at(t, "2024-01-15", 9, 45))
	if !errors.Is(err, session.ErrSessionOverlap) {
		t.Fatalf("expected ErrSessionOverlap, got %v", err)
	}

	// Shifting the block past the existing one succeeds.
	if _, err = m.AddCompleted(at(t, "2024-01-15", 10, 0), at(t, "2024-01-15", 10, 15)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Sessions()) != 2 {
		t.Errorf("expected 2 sessions on the selected date, got %d", len(m.Sessions()))
	}
}

func TestUpdate_OverlapNotApplied(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.AddCompleted(at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target, err := m.AddCompleted(at(t, "2024-01-15", 11, 0), at(t, "2024-01-15", 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newStart := at(t, "2024-01-15", 9, 30)

	err = m.Update(target, session.Updates{StartTime: &newStart})
	if !errors.Is(err, session.ErrSessionOverlap) {
		t.Fatalf("expected ErrSessionOverlap, got %v", err)
	}

	// The rejected update must not have been applied.
	for _, sess := range m.Sessions() {
		if sess.ID == target.ID && !sess.StartTime.Equal(target.StartTime) {
			t.Errorf("rejected update was applied: %v", sess.StartTime)
		}
	}
}

func TestUpdate_RecomputesDuration(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target, err := m.AddCompleted(at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newEnd := at(t, "2024-01-15", 10, 30)

	if err := m.Update(target, session.Updates{EndTime: &newEnd}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := m.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	if sessions[0].Duration != 90*time.Minute {
		t.Errorf("expected duration 90m, got %v", sessions[0].Duration)
	}
}

func TestDelete_RefreshesView(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target, err := m.AddCompleted(at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Delete(target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Sessions()) != 0 {
		t.Errorf("expected empty view after delete, got %d sessions", len(m.Sessions()))
	}
}

func TestAddManual_NoonBlockOnPastDates(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess, err := m.AddManual("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := sess.EndTime.Hour(); got != 12 {
		t.Errorf("expected the block to end at noon, got hour %d", got)
	}

	if sess.Duration != time.Hour {
		t.Errorf("expected the default 1h block, got %v", sess.Duration)
	}

	// A second manual block on the same day collides with the first.
	_, err = m.AddManual("2024-01-15")
	if !errors.Is(err, session.ErrSessionOverlap) {
		t.Errorf("expected ErrSessionOverlap, got %v", err)
	}
}

func TestOnChange_FiresAfterMutations(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var calls int

	m.OnChange(func() { calls++ })

	target, err := m.AddCompleted(at(t, "2024-01-15", 9, 0), at(t, "2024-01-15", 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newEnd := at(t, "2024-01-15", 10, 15)

	if err := m.Update(target, session.Updates{EndTime: &newEnd}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Delete(target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 3 {
		t.Errorf("expected 3 change notifications, got %d", calls)
	}
}

func TestUpdate_EndTimeCompletesRunningSession(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	start := at(t, "2024-01-15", 9, 0)

	if err := db.SaveSession(&models.Session{
		StartTime: start,
		Active:    true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess := m.Sessions()[0]
	end := at(t, "2024-01-15", 10, 0)

	if err := m.Update(&sess, session.Updates{EndTime: &end}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.Sessions()[0]

	if got.Active {
		t.Error("expected the session to be completed once it has an end time")
	}

	if got.Duration != time.Hour {
		t.Errorf("expected a 1h duration, got %v", got.Duration)
	}

	active, err := db.GetActiveSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if active != nil {
		t.Errorf("expected no active session, got %d", active.ID)
	}
}

func TestOverlapping_PriorDaySpanningMidnight(t *testing.T) {
	db := testutil.NewStore(t)
	m := session.NewManager(db)

	// existing completed session [Jan 14 23:00, Jan 15 01:00)
	if _, err := m.AddCompleted(at(t, "2024-01-14", 23, 0), at(t, "2024-01-15", 1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a candidate entirely inside Jan 15 must still see the conflict even
	// though the existing session is filed under Jan 14
	got, err := m.Overlapping(at(t, "2024-01-15", 0, 30), at(t, "2024-01-15", 0, 45), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Errorf("expected 1 conflict, got %d", len(got))
	}

	if _, err := m.AddCompleted(at(t, "2024-01-15", 0, 15), at(t, "2024-01-15", 0, 30)); !errors.Is(err, session.ErrSessionOverlap) {
		t.Errorf("expected ErrSessionOverlap, got %v", err)
	}
}
