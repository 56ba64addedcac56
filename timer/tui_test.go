package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tsuyoshi84/time-tracker/internal/testutil"
)

func TestUpdate_TickSuspension(t *testing.T) {
	e := New(testutil.NewStore(t), Opts{})

	if err := e.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewModel(e)

	// losing visibility stops the readout and invalidates the pending tick
	next, cmd := m.Update(tea.BlurMsg{})
	m = next.(Model)

	if m.visible {
		t.Fatal("expected the model to be hidden after blur")
	}

	if cmd != nil {
		t.Fatal("expected no command on blur")
	}

	staleID := m.tickID - 1

	next, cmd = m.Update(tickMsg{id: staleID})
	m = next.(Model)

	if cmd != nil {
		t.Error("expected an invalidated tick to be dropped without rescheduling")
	}

	next, cmd = m.Update(tickMsg{id: m.tickID})
	m = next.(Model)

	if cmd != nil {
		t.Error("expected no rescheduling while hidden")
	}

	// regaining visibility recomputes immediately and resumes ticking
	m.elapsed = time.Hour

	next, cmd = m.Update(tea.FocusMsg{})
	m = next.(Model)

	if !m.visible {
		t.Fatal("expected the model to be visible after focus")
	}

	if m.elapsed >= time.Hour {
		t.Error("expected elapsed to be recomputed from the engine on focus")
	}

	if cmd == nil {
		t.Error("expected ticking to resume on focus")
	}
}

func TestUpdate_StaleTickAfterRefocus(t *testing.T) {
	e := New(testutil.NewStore(t), Opts{})
	m := NewModel(e)

	pendingID := m.tickID

	next, _ := m.Update(tea.BlurMsg{})
	m = next.(Model)

	next, _ = m.Update(tea.FocusMsg{})
	m = next.(Model)

	// the tick scheduled before blur arrives late and must not stack a
	// second tick loop
	next, cmd := m.Update(tickMsg{id: pendingID})
	m = next.(Model)

	if cmd != nil {
		t.Error("expected the pre-blur tick to be dropped after refocus")
	}
}
